package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	DefaultSortBy = "views"
	SortAsc       = "asc"
)
