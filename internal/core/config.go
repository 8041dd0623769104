package core

type AppConfig interface {
	GetRuntimePath() string
	GetDataDir() string
	GetOutputMode() string
	IsQuotedArgs() bool
	IsLoginRequired() bool
}

type WebConfig interface {
	GetAddr() string
	GetSessionKey() []byte
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramOwnerID() int64
}
