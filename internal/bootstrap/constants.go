package bootstrap

// Log messages for event handler registration
const (
	LogMsgEventHandlersRegistered = "Event handlers registered"
	LogMsgLevelUpAnnounce         = "Level up"
	LogMsgRankUpAnnounce          = "Rank up"
	LogMsgBossDefeatedAnnounce    = "Boss defeated"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Cleanup worker shutdown failed"
)
