package usecase

import (
	"errors"
	"fmt"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// NotFoundError means the referenced lead id is absent from the store.
// Raised by Enrich, Score and Route; never by Ingest.
type NotFoundError struct {
	LeadID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lead %d not found", e.LeadID)
}

func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
