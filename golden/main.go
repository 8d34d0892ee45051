package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/urfave/cli"

	"github.com/pwcheck/zxcvbn/commands"
	"github.com/pwcheck/zxcvbn/strength"
)

// The golden tool locks down the observable behavior of the strength model:
// generate evaluates a fixed set of passwords and records entropy plus cover
// shape, validate re-evaluates and compares. Any intentional model change
// must regenerate the vectors.

const vectorPath = "testdata/golden-vectors.json"

// entropyTolerance absorbs floating-point noise across platforms without
// hiding model changes.
const entropyTolerance = 1e-9

type goldenVector struct {
	Password string   `json:"password"`
	Entropy  float64  `json:"entropy"`
	Cover    []string `json:"cover"`
	Comment  string   `json:"comment"`
}

type goldenCase struct {
	password string
	comment  string
}

// goldenCases exercises every match kind at least once.
var goldenCases = []goldenCase{
	{"qwerty", "single spatial run"},
	{"1qaz2wsx", "two vertical spatial runs"},
	{"abcdef", "ascending sequence"},
	{"fedcba", "descending sequence"},
	{"11/03/1985", "separator date"},
	{"19850311", "separator-free date"},
	{"2017", "bare year"},
	{"zzzzz", "repeat"},
	{"8675309", "digit run"},
	{"correcthorse", "dictionary words"},
	{"P4ssw0rd", "leet dictionary word"},
	{"Tr0ub4dour&3", "mixed"},
	{"x", "single byte"},
	{"\x01\x02\x03", "bytes outside every alphabet"},
}

// newAnalyzer mirrors the CLI configuration and registers a small ranked
// dictionary so dict matches appear in the vectors.
func newAnalyzer() *strength.Analyzer {
	analyzer := strength.New(strength.Options{Symbols: commands.DefaultSymbols})
	dict := analyzer.AddDictionary("golden")
	for rank, word := range []string{"password", "correct", "horse", "troubadour"} {
		dict.AddWord(word, rank+1)
	}
	return analyzer
}

func evaluate(analyzer *strength.Analyzer, password string) (goldenVector, error) {
	res, err := analyzer.Estimate([]byte(password), nil, nil)
	if err != nil {
		return goldenVector{}, fmt.Errorf("estimating %q failed: %s", password, err)
	}

	v := goldenVector{Password: password, Entropy: res.Entropy()}
	for _, m := range res.Cover() {
		v.Cover = append(v.Cover, fmt.Sprintf("%s[%d,%d]", m.Type, m.I, m.J))
	}
	return v, nil
}

func generateGolden() error {
	analyzer := newAnalyzer()

	vectors := make([]goldenVector, 0, len(goldenCases))
	for _, c := range goldenCases {
		v, err := evaluate(analyzer, c.password)
		if err != nil {
			return err
		}
		v.Comment = c.comment
		vectors = append(vectors, v)
	}

	f, err := os.Create(vectorPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(vectors)
}

func validateGolden() error {
	data, err := os.ReadFile(vectorPath)
	if err != nil {
		return fmt.Errorf("failed to read golden vectors: %w", err)
	}

	var vectors []goldenVector
	if err := json.Unmarshal(data, &vectors); err != nil {
		return fmt.Errorf("failed to parse golden vectors: %w", err)
	}

	fmt.Printf("Validating %d golden vectors...\n", len(vectors))

	analyzer := newAnalyzer()
	failCount := 0
	for i, v := range vectors {
		got, err := evaluate(analyzer, v.Password)
		if err != nil {
			fmt.Printf("FAIL [%d] %s: %v\n", i, v.Comment, err)
			failCount++
			continue
		}
		if math.Abs(got.Entropy-v.Entropy) > entropyTolerance {
			fmt.Printf("FAIL [%d] %s: entropy %f, expected %f\n", i, v.Comment, got.Entropy, v.Entropy)
			failCount++
			continue
		}
		if fmt.Sprint(got.Cover) != fmt.Sprint(v.Cover) {
			fmt.Printf("FAIL [%d] %s: cover %v, expected %v\n", i, v.Comment, got.Cover, v.Cover)
			failCount++
			continue
		}
		fmt.Printf("PASS [%d] %s\n", i, v.Comment)
	}

	if failCount > 0 {
		return fmt.Errorf("%d golden vectors failed", failCount)
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "golden"
	app.Usage = "a tool to ensure stability of the strength model's observable output"

	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "Generate golden test data",
			Action: func(c *cli.Context) error {
				return generateGolden()
			},
		},
		{
			Name:  "validate",
			Usage: "Validate golden test data",
			Action: func(c *cli.Context) error {
				return validateGolden()
			},
		},
	}

	app.Action = func(c *cli.Context) error {
		return errors.New("command is required; use help to see list of commands")
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
