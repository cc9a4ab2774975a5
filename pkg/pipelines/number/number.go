package number

import (
	"math"
	"strconv"
	"strings"

	"github.com/ib-77/ropenv/pkg/rop"
	"github.com/ib-77/ropenv/pkg/rop/reader"
)

const (
	StageSeed     = "seed"
	StageSum      = "sum"
	StageSpread   = "spread"
	StageSubTotal = "sub_total"
	StageScale    = "scale"
	StageScoped   = "scoped"
	StageFinal    = "final"
)

type Env struct {
	A string `yaml:"a" json:"a"`
}

type Process[Out any] = reader.Computation[Env, Out]

type Step1Config struct {
	InitialNumber float64 `yaml:"initial_number" json:"initial_number"`
}

type Step2Config struct {
	AdditionalValue float64 `yaml:"additional_value" json:"additional_value"`
}

type Step3Config struct {
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

type Config struct {
	Step1 Step1Config `yaml:"step1" json:"step1"`
	Step2 Step2Config `yaml:"step2" json:"step2"`
	Step3 Step3Config `yaml:"step3" json:"step3"`
}

// Seeded is the first stage's output.
type Seeded struct {
	NewA      string
	NewNumber float64
}

// Spread is the third stage's output; it becomes part of SpreadEnv.
type Spread struct {
	NewA       string
	NewNumber  float64
	NewNumber2 float64
}

// SpreadEnv is Env widened with Spread for the scoped sub-chain.
type SpreadEnv struct {
	Env
	Spread
}

type SpreadProcess[Out any] = reader.Computation[SpreadEnv, Out]

// Parse reads a textual number. Empty, malformed and non-finite values are
// invalid input.
func Parse(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, rop.Wrap(rop.KindInvalidInput, err, "%s=%q is not a number", field, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, rop.InvalidInput("%s=%q is not a finite number", field, s)
	}
	return v, nil
}

func (e Env) Number() (float64, error) {
	return Parse("a", e.A)
}
