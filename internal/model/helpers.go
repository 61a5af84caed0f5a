package model

import "strings"

func trim(s string) string {
	return strings.TrimSpace(s)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = trim(*src)
	}
}

func setList(dst *StringList, src *StringList) {
	if src != nil {
		*dst = src.Clean()
	}
}
