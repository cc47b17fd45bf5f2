package value

// Item is a storage location text can be loaded from and saved to.
type Item interface {
	Read() (string, error)
	Write(content string) error
	Path() string
}
