package resolve

import "regexp"

// invalidChars are characters that destination filesystems reject.
// They are replaced before any existence probe, so collision probing
// always works on the final, safe name.
var invalidChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename replaces filesystem-invalid characters with "_"
func SanitizeFilename(filename string) string {
	return invalidChars.ReplaceAllString(filename, "_")
}
