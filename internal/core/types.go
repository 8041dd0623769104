package core

const (
	AppName       = "csvrepl"
	AppVersion    = "0.1.0"
	RepositoryURL = "https://github.com/sandevgo/csvrepl"
)
