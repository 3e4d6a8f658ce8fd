// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// add_license_header.go: Add or check license headers in project files
// Usage: go run add_license_header.go -dir <root> [--check]

package main

import (
	"bufio"
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

//go:embed license_header.txt
var licenseHeader string

func main() {
	checkOnly := flag.Bool("check", false,
		"Check mode: only verify headers, do not modify files")

	var targetDir string
	flag.StringVar(&targetDir, "dir", "",
		"Target directory to start processing files from. This flag is required to run.")

	flag.Parse()

	if len(targetDir) <= 0 {
		log.Fatal("Please provide a directory to look for files, use -dir\n")
	}
	if _, err := os.Stat(targetDir); os.IsNotExist(err) {
		log.Fatalf("Invalid target directory: '%s'\n", targetDir)
	}
	fmt.Printf("Processing files in directory: %s\n", targetDir)

	// Patterns starting with a dot are treated as file extensions, others as
	// exact file names. The value is the comment prefix for the header.
	patterns := map[string]string{
		".go":    "//",
		"go.mod": "//",
	}

	// Checked-in generated mocks already carry their own marker line.
	ignore := []string{"_mocks.go", ".pb.go"}

	for pat, prefix := range patterns {
		fmt.Printf("Processing files matching %s using prefix '%s'\n", pat, prefix)
		if err := processFiles(targetDir, pat, prefix, licenseHeader, *checkOnly, ignore); err != nil {
			log.Fatalf("Error processing files matching %s: %v\n", pat, err)
		}
	}
}

// processFiles walks the directory tree starting from dir, finds files
// matching the given pattern and adds or checks the license header on each.
func processFiles(dir, pat, prefix, license string, checkOnly bool, ignore []string) error {
	header := addPrefix(license, prefix)
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if shouldIgnore(path, ignore) {
			return nil
		}
		if matchPattern(path, pat) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk directory %s: %v", dir, err)
	}
	anyFails := false
	for _, f := range files {
		if err := processFile(f, header, checkOnly); err != nil {
			fmt.Println(err)
			if !checkOnly {
				return err
			}
			anyFails = true
		}
	}
	if anyFails {
		return fmt.Errorf("some files do not have the correct license header")
	}
	return nil
}

// processFile verifies the license header of the given file and, unless
// checkOnly is set, prepends or replaces it as needed.
func processFile(file, header string, checkOnly bool) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %v", file, err)
	}

	if strings.HasPrefix(string(content), "// Code generated") {
		return nil // skip generated files
	}

	lines := strings.Split(string(content), "\n")
	headerLines := strings.Split(strings.TrimSuffix(header, "\n"), "\n")
	needsUpdate := false
	for i, l := range headerLines {
		if i >= len(lines) || strings.TrimSpace(lines[i]) != strings.TrimSpace(l) {
			needsUpdate = true
			break
		}
	}
	if !needsUpdate {
		return nil
	}
	if checkOnly {
		return fmt.Errorf("missing or incorrect license header: %s", file)
	}

	// An outdated header is replaced rather than stacked.
	if strings.Contains(lines[0], "Sonic Operations Ltd") {
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				content = []byte(strings.Join(lines[i+1:], "\n"))
				break
			}
		}
	}

	newContent := header + "\n" + string(content)
	return os.WriteFile(file, []byte(newContent), 0644)
}

// shouldIgnore checks if the file path should be skipped.
func shouldIgnore(path string, ignoredPaths []string) bool {
	for _, pathFragment := range ignoredPaths {
		if strings.Contains(path, pathFragment) {
			return true
		}
	}
	return false
}

func matchPattern(path, pat string) bool {
	if pat[0] == '.' {
		return strings.HasSuffix(path, pat)
	}
	return filepath.Base(path) == pat
}

func addPrefix(license, prefix string) string {
	var buf bytes.Buffer
	s := bufio.NewScanner(strings.NewReader(license))
	for s.Scan() {
		line := s.Text()
		if line == "" {
			buf.WriteString(prefix + "\n")
		} else {
			buf.WriteString(prefix + " " + line + "\n")
		}
	}
	return buf.String()
}
