package constants

// StorageMode describes which backend is currently serving guestbook entries.
type StorageMode string

const (
	StorageModePersistent StorageMode = "persistent" // relational store reachable
	StorageModeDegraded   StorageMode = "degraded"   // store present, last operation fell back to memory
	StorageModeMemory     StorageMode = "memory"     // store unavailable since startup
)

// MessagesTable is the single table holding guestbook entries.
const MessagesTable = "messages"
