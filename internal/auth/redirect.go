package auth

import "net/url"

// ResolveRedirectTarget validates an untrusted post-login destination.
// Only in-application relative paths survive: anything empty, not starting
// with "/", or protocol-relative ("//host") falls back. This is the single
// check standing between the login flow and an open redirect.
func ResolveRedirectTarget(input, fallback string) string {
	if input == "" {
		return fallback
	}
	if input[0] != '/' {
		return fallback
	}
	if len(input) > 1 && input[1] == '/' {
		return fallback
	}
	return input
}

// BuildLoginPath round-trips a sanitized redirect target through the login
// page as its redirectTo query parameter.
func BuildLoginPath(target string) string {
	return "/login?redirectTo=" + url.QueryEscape(target)
}
