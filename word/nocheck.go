//go:build tagword_nocheck

package word

const checks = false
