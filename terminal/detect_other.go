//go:build !unix

package terminal

// DetectColorMode falls back to the 256-color palette
func DetectColorMode() ColorMode { return ColorMode256 }

func resetTerminalMode() {}
