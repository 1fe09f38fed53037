package links

// Built-in patterns for common compiler and tool diagnostics. These target
// the file location embedded in the message rather than the whole line.

// GoCompilerPattern matches Go build and vet diagnostics like
// "./main.go:10:5: undefined: foo"
func GoCompilerPattern() Pattern {
	return NewPattern("file",
		`([a-zA-Z0-9_./\-]+\.go):(\d+):(\d+)`,
		"$1:$2:$3")
}

// RustCompilerPattern matches rustc diagnostics like
// "  --> src/main.rs:4:9"
func RustCompilerPattern() Pattern {
	return NewPattern("file",
		`-->\s+([a-zA-Z0-9_./\-]+\.rs):(\d+):(\d+)`,
		"$1:$2:$3")
}

// PythonTracebackPattern matches traceback frames like
// `File "app.py", line 12`
func PythonTracebackPattern() Pattern {
	return NewPattern("file",
		`File "([^"]+)", line (\d+)`,
		"$1:$2")
}

// NodeStackPattern matches Node.js stack frames like
// "    at Object.<anonymous> (/app/index.js:3:15)"
func NodeStackPattern() Pattern {
	return NewPattern("file",
		`\(([a-zA-Z0-9_./\-]+\.[cm]?js):(\d+):(\d+)\)`,
		"$1:$2:$3")
}

// TypeScriptCompilerPattern matches tsc diagnostics like
// "src/index.ts(10,5): error TS2304"
func TypeScriptCompilerPattern() Pattern {
	return NewPattern("file",
		`([a-zA-Z0-9_./\-]+\.tsx?)\((\d+),(\d+)\)`,
		"$1:$2:$3")
}

// GitDiffPattern matches diff headers like "+++ b/path/to/file"
func GitDiffPattern() Pattern {
	return NewPattern("file",
		`[+-]{3} [ab]/([^\s]+)`,
		"$1")
}

// CommonPatterns returns all built-in diagnostic patterns
func CommonPatterns() []Pattern {
	return []Pattern{
		GoCompilerPattern(),
		RustCompilerPattern(),
		PythonTracebackPattern(),
		NodeStackPattern(),
		TypeScriptCompilerPattern(),
		GitDiffPattern(),
	}
}
