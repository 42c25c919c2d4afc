package domain

import "errors"

var (
	ErrMissingVoterInfo = errors.New("please fill in all voter information fields")
	ErrNoSelections     = errors.New("please select at least one vote option")
	ErrUnknownCategory  = errors.New("unknown voting category")
	ErrUnknownOption    = errors.New("invalid option for this category")
	ErrUnknownDistrict  = errors.New("unknown district")
	ErrUnknownView      = errors.New("unknown view")
	ErrDuplicateVote    = errors.New("vote id already recorded")
	ErrInvalidCatalog   = errors.New("invalid voting catalog")
)
