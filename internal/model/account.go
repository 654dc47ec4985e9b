package model

import "errors"

// AccessLevel is the staff level of an account or entity.
type AccessLevel int32

const (
	AccessPlayer AccessLevel = iota
	AccessVIP
	AccessCounselor
	AccessDecorator
	AccessSpawner
	AccessGameMaster
	AccessSeer
	AccessAdministrator
	AccessDeveloper
	AccessOwner
)

// DefaultCharLimit is the number of character slots of an ordinary account.
const DefaultCharLimit = 7

// Account represents a player account as seen by character creation.
type Account struct {
	Login       string
	AccessLevel AccessLevel
	Young       bool // account is still eligible for new player protection
	CharLimit   int
}

// ErrAccountFull is returned by slot allocators when every character slot
// of the account is taken.
var ErrAccountFull = errors.New("account has no free character slot")

// ErrUnknownAccount is returned by slot allocators for a login that does not
// exist when accounts are not created on demand.
var ErrUnknownAccount = errors.New("unknown account")

// Slot is a character slot reserved for a new entity.
type Slot struct {
	Account  Account
	Index    int // zero-based slot position
	Existing int // characters the account holds besides this one
	// Created counts every character ever created on the account before this
	// one. Unlike Existing it does not drop when a character is deleted.
	Created int
}
