package provider

// Article is the readable content extracted from a web page.
type Article struct {
	Title    string
	SiteName string
	Text     string
}
