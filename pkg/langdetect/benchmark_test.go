package langdetect

import "testing"

func BenchmarkDetectGo(b *testing.B) {
	code := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}"
	for b.Loop() {
		Detect(code)
	}
}

func BenchmarkDetectFallback(b *testing.B) {
	code := "int x = 0; x += 1;"
	for b.Loop() {
		Detect(code)
	}
}
