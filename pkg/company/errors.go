package company

import "errors"

// ErrNoCompanyFound is returned by Load when the backend answers
// successfully but the account has no company. It is deliberately
// distinct from transport and HTTP failures so callers can tell "the
// server is down" apart from "this account is not provisioned".
var ErrNoCompanyFound = errors.New("company: no company found for this account")
