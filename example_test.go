package contractgen_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	contractgen "github.com/alnah/go-contractgen"
)

// noTools behaves like a machine without any external converter.
type noTools struct{}

func (noTools) Run(context.Context, string, ...string) (string, string, error) {
	return "", "", errors.New("executable file not found in $PATH")
}

// Example generates a contract without external tools, using the
// in-process gofpdf engine for the PDF.
func Example() {
	dir, err := os.MkdirTemp("", "contractgen-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	gen, err := contractgen.New(
		contractgen.WithRunner(noTools{}),
		contractgen.WithClock(func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) }),
		contractgen.WithOutputDir(dir),
		contractgen.WithHTMLFallback(contractgen.HTMLFallbackNone),
		contractgen.WithPDFEngines(contractgen.EngineGofpdf),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fields, _, err := contractgen.ResolveFields(contractgen.DefaultFields(), []string{
		"--partner-name", "Jane Doe",
		"--start-date", "today",
		"--promo-code", "JANE25",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := gen.Generate(context.Background(), fields)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(filepath.Base(result.MarkdownPath))
	fmt.Println("html:", result.HTMLPath != "")
	fmt.Println("pdf:", result.PDFEngine)
	// Output:
	// kauntor-partnership-jane-doe-2025-01-15.md
	// html: false
	// pdf: gofpdf
}

func ExampleRender() {
	f := contractgen.NewFields()
	f.Set(contractgen.FieldPartnerName, "Jane Doe")
	f.Set(contractgen.FieldIsMinor, "no")

	template := "Partner: {{PARTNER_NAME}}" +
		"{{#IF_MINOR}}, with guardian{{/IF_MINOR}}" +
		"{{#IF_ADULT}}, paid directly{{/IF_ADULT}}"

	fmt.Println(contractgen.Render(template, f))
	// Output: Partner: Jane Doe, paid directly
}

func ExampleParseOverrides() {
	f, ignored := contractgen.ParseOverrides([]string{
		"--partner-name", "Jane Doe", "stray", "--is-minor", "--guardian-name", "John Doe",
	})

	for _, key := range f.Keys() {
		fmt.Printf("%s=%s\n", key, f.Value(key))
	}
	fmt.Println("ignored:", ignored)
	// Output:
	// PARTNER_NAME=Jane Doe
	// IS_MINOR=true
	// GUARDIAN_NAME=John Doe
	// ignored: [stray]
}

func ExampleOutputName() {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	fmt.Println(contractgen.OutputName("", "O'Brien, Jr.", now))
	// Output: kauntor-partnership-o-brien-jr--2025-01-15
}
