package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/streamline-dev/streamline/internal/project"
)

// Answers holds the init options chosen interactively.
type Answers struct {
	Name    string
	Edition string
	Docs    project.DocsGenerator
	Tests   project.TestFramework
}

// RunInteractive walks the user through name, edition, docs and tests
// selection on r and w. Pressing enter keeps the value from defaults; a
// default that is not a menu entry leaves that menu without one.
// The name is checked as soon as it is entered.
func RunInteractive(r io.Reader, w io.Writer, defaults Answers) (*Answers, error) {
	reader := bufio.NewReader(r)

	// Step 1: Project name.
	fmt.Fprintf(w, "Project name [%s]: ", defaults.Name)
	name, err := readLine(reader)
	if err != nil {
		return nil, fmt.Errorf("reading name: %w", err)
	}
	if name == "" {
		name = defaults.Name
	}
	if err := project.ValidateName(name); err != nil {
		return nil, err
	}

	// Step 2: Edition.
	editions := make([]string, 0, len(project.Editions()))
	for _, e := range project.Editions() {
		editions = append(editions, string(e))
	}
	editionIdx, err := selectFromList(reader, w, "Select C++ edition:", editions, indexOf(editions, defaults.Edition))
	if err != nil {
		return nil, err
	}

	// Step 3: Documentation generator.
	docsItems := []string{string(project.DocsNone), string(project.DocsDoxygen)}
	docsIdx, err := selectFromList(reader, w, "Select documentation generator:", docsItems, indexOf(docsItems, string(defaults.Docs)))
	if err != nil {
		return nil, err
	}

	// Step 4: Test framework.
	testItems := []string{string(project.TestsNone), string(project.TestsGTest)}
	testIdx, err := selectFromList(reader, w, "Select test framework:", testItems, indexOf(testItems, string(defaults.Tests)))
	if err != nil {
		return nil, err
	}

	return &Answers{
		Name:    name,
		Edition: editions[editionIdx],
		Docs:    project.DocsGenerator(docsItems[docsIdx]),
		Tests:   project.TestFramework(testItems[testIdx]),
	}, nil
}

// selectFromList presents a numbered list and returns the selected index.
// An empty answer picks def; with def < 0 there is no default and a number
// must be entered.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string, def int) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		marker := " "
		if i == def {
			marker = "*"
		}
		fmt.Fprintf(w, " %s%d) %s\n", marker, i+1, item)
	}
	if def >= 0 {
		fmt.Fprintf(w, "Enter number [1-%d, default %d]: ", len(items), def+1)
	} else {
		fmt.Fprintf(w, "Enter number [1-%d]: ", len(items))
	}

	line, err := readLine(reader)
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	if line == "" {
		if def < 0 {
			return 0, fmt.Errorf("no default selection: choose 1-%d", len(items))
		}
		return def, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}

	return num - 1, nil
}

// readLine reads one trimmed line. A final line without a newline is
// accepted; EOF before any input is an error.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// indexOf returns -1 when v is not one of items.
func indexOf(items []string, v string) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return -1
}
