// Package repository_mocks holds gomock doubles for the batch, report,
// warehouse and audit repositories.
// Regenerate with: go generate ./internal/repositories/repository_mocks
package repository_mocks

//go:generate mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks
