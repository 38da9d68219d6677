package cutline

// ParseOptions holds configuration for parsing.
type ParseOptions struct {
	// Extra banner keywords to skip, in addition to the standard title
	// keyword (matched case-insensitively as substrings)
	bannerKeywords []string
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		bannerKeywords: nil, // standard title keyword only
	}
}

// clone creates a deep copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	newOpts := ParseOptions{}

	// Deep copy keyword slice
	if o.bannerKeywords != nil {
		newOpts.bannerKeywords = make([]string, len(o.bannerKeywords))
		copy(newOpts.bannerKeywords, o.bannerKeywords)
	}

	return newOpts
}
