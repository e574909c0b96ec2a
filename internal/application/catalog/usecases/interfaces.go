package usecases

import "context"

// TransactionManager runs a function inside a database transaction.
// The concrete implementation lives in shared/db.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

type CreateBookExecutor interface {
	Execute(ctx context.Context, cmd CreateBookCommand) (*CreateBookResult, error)
}

type UpdateBookExecutor interface {
	Execute(ctx context.Context, cmd UpdateBookCommand) (*UpdateBookResult, error)
}

type DeleteBookExecutor interface {
	Execute(ctx context.Context, cmd DeleteBookCommand) (*DeleteBookResult, error)
}

type GetBookExecutor interface {
	Execute(ctx context.Context, query GetBookQuery) (*GetBookResult, error)
}

type ListBooksExecutor interface {
	Execute(ctx context.Context, query ListBooksQuery) (*ListBooksResult, error)
}

type ExportBooksExecutor interface {
	Execute(ctx context.Context, query ExportBooksQuery) (*ExportBooksResult, error)
}

type CreateClassExecutor interface {
	Execute(ctx context.Context, cmd CreateClassCommand) (*CreateClassResult, error)
}

type UpdateClassExecutor interface {
	Execute(ctx context.Context, cmd UpdateClassCommand) (*UpdateClassResult, error)
}

type DeleteClassExecutor interface {
	Execute(ctx context.Context, cmd DeleteClassCommand) (*DeleteClassResult, error)
}

type GetClassExecutor interface {
	Execute(ctx context.Context, query GetClassQuery) (*GetClassResult, error)
}

type ListClassesExecutor interface {
	Execute(ctx context.Context, query ListClassesQuery) (*ListClassesResult, error)
}

type AddFeedbackExecutor interface {
	Execute(ctx context.Context, cmd AddFeedbackCommand) (*AddFeedbackResult, error)
}

type ListFeedbackExecutor interface {
	Execute(ctx context.Context, query ListFeedbackQuery) (*ListFeedbackResult, error)
}
