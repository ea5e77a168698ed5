// Command librarium generates, analyzes, and exports AI-generated book
// libraries using the Gemini API.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
