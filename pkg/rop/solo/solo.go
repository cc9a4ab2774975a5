package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropenv/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

// Validate fails with an invalid-input error carrying errMsg when validate
// rejects the input.
func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {

	if isValid, errMsg := validate(ctx, input); !isValid {
		return rop.Fail[T](rop.InvalidInput("%s", errMsg))
	}
	return rop.Success(input)
}

// ValidateAll runs every validator against the input. With breakOnError the
// first rejection is returned; otherwise all rejections are joined.
func ValidateAll[T any](ctx context.Context, input rop.Result[T], breakOnError bool,
	validators ...func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if ctx.Err() != nil {
			return rop.Cancel[T](ctx.Err())
		}

		checked := Validate(ctx, input.Result(), validate)
		if checked.IsSuccess() {
			continue
		}

		if breakOnError {
			return checked
		}
		errs = append(errs, checked.Err())
	}

	if len(errs) > 0 {
		return rop.Fail[T](errors.Join(errs...))
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.Propagate[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.Propagate[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.FromError[Out](err)
		}
		return rop.Success(out)
	}
	return rop.Propagate[In, Out](input)
}

// Recover hands a failure to onFailure. Successes and cancellations pass
// through untouched.
func Recover[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err error) rop.Result[T]) rop.Result[T] {

	if input.IsSuccess() || input.IsCancel() {
		return input
	}
	return onFailure(ctx, input.Err())
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		if onSuccess != nil {
			onSuccess(ctx, input.Result())
		}
	case input.IsCancel():
		if onCancel != nil {
			onCancel(ctx, input.Err())
		}
	default:
		if onError != nil {
			onError(ctx, input.Err())
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}
