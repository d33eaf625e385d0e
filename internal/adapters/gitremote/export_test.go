package gitremote

// TagNamesForTest exports the private tag extraction for testing
// purposes.
func TagNamesForTest(listing string) []string {
	return tagNames(listing)
}
