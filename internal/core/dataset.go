package core

// DatasetStore is the stateful backend behind load_file, view and search.
type DatasetStore interface {
	Load(args []string) Result
	View(args []string) Result
	Search(args []string) Result
	Current() string
}
