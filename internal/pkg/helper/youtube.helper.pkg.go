package helper

import "regexp"

const videoIDLength = 11

var youtubePattern = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// ExtractVideoID returns the 11 character video id of a YouTube link.
func ExtractVideoID(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	match := youtubePattern.FindStringSubmatch(url)
	if match == nil || len(match[2]) != videoIDLength {
		return "", false
	}
	return match[2], true
}
