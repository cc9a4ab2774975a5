package number

import (
	"github.com/ib-77/ropenv/pkg/rop/reader"
)

// Seed starts the run with the configured initial number.
func Seed(cfg Step1Config) Process[Seeded] {
	return reader.Named(StageSeed, reader.Asks(func(env Env) Seeded {
		return Seeded{NewA: env.A, NewNumber: cfg.InitialNumber}
	}))
}

// Sum adds the seed to A.
func Sum(in Seeded) Process[float64] {
	return reader.Named(StageSum, reader.Try(func(env Env) (float64, error) {
		a, err := env.Number()
		if err != nil {
			return 0, err
		}
		return a + in.NewNumber, nil
	}))
}

func SpreadFrom(cfg Step2Config) reader.Stage[Env, float64, Spread] {
	return func(in float64) Process[Spread] {
		return reader.Named(StageSpread, reader.Try(func(env Env) (Spread, error) {
			a, err := env.Number()
			if err != nil {
				return Spread{}, err
			}
			return Spread{
				NewA:       env.A,
				NewNumber:  a - in,
				NewNumber2: a + cfg.AdditionalValue,
			}, nil
		}))
	}
}

// SubTotal is A + NewA + NewNumber2, read from the widened environment.
func SubTotal() SpreadProcess[float64] {
	return reader.Named(StageSubTotal, reader.Try(func(env SpreadEnv) (float64, error) {
		a, err := env.Number()
		if err != nil {
			return 0, err
		}
		newA, err := Parse("new_a", env.NewA)
		if err != nil {
			return 0, err
		}
		return a + newA + env.NewNumber2, nil
	}))
}

func Scale(cfg Step3Config) reader.Stage[SpreadEnv, float64, float64] {
	return func(previous float64) SpreadProcess[float64] {
		return reader.Named(StageScale, reader.Succeed[SpreadEnv](previous*cfg.Multiplier))
	}
}

// ScopedTotal runs SubTotal and Scale with Spread merged into the
// environment.
func ScopedTotal(cfg Step3Config) reader.Stage[Env, Spread, float64] {
	return func(in Spread) Process[float64] {
		return reader.Named(StageScoped, reader.Extend(
			func(env Env) SpreadEnv {
				return SpreadEnv{Env: env, Spread: in}
			},
			reader.Chain(SubTotal(), Scale(cfg)),
		))
	}
}

func AddA(in float64) Process[float64] {
	return reader.Named(StageFinal, reader.Try(func(env Env) (float64, error) {
		a, err := env.Number()
		if err != nil {
			return 0, err
		}
		return a + in, nil
	}))
}

// Pipeline assembles the number run for cfg.
func Pipeline(cfg Config) Process[float64] {
	seeded := Seed(cfg.Step1)
	summed := reader.Chain(seeded, Sum)
	spread := reader.Chain(summed, SpreadFrom(cfg.Step2))
	scoped := reader.Chain(spread, ScopedTotal(cfg.Step3))
	return reader.Chain(scoped, AddA)
}
