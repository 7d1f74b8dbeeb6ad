package services

import (
	"strings"

	"checkitoff/config"
	"checkitoff/models"
)

// StatusRule derives an article's verification label from its tallies.
type StatusRule func(upVotes, downVotes int64) string

// RoleRule assigns an account role from its email and recorded vote count.
type RoleRule func(email string, voteCount int64) string

// Policy collects the rules that varied between the historical backends so a
// deployment picks behavior through configuration instead of forked code.
type Policy struct {
	Status      StatusRule
	Role        RoleRule
	OnePerVoter bool
}

// DeriveStatus is the canonical status rule: strictly more up votes means
// Verified, strictly more down votes means Fake, a tie stays Unverified.
func DeriveStatus(upVotes, downVotes int64) string {
	switch {
	case upVotes > downVotes:
		return models.StatusVerified
	case downVotes > upVotes:
		return models.StatusFake
	default:
		return models.StatusUnverified
	}
}

// NewRoleRule builds the standard role rule: an email under the admin domain
// registers as Admin, accounts with more than memberThreshold recorded votes
// become Member, everyone else is Reader.
func NewRoleRule(adminDomain string, memberThreshold int64) RoleRule {
	suffix := "@" + strings.ToLower(adminDomain)
	return func(email string, voteCount int64) string {
		if strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), suffix) {
			return models.RoleAdmin
		}
		if voteCount > memberThreshold {
			return models.RoleMember
		}
		return models.RoleReader
	}
}

// DefaultPolicy mirrors the stock deployment: canonical status rule,
// admin.ornor admin domain, Member above 3 votes, unlimited repeat votes.
func DefaultPolicy() Policy {
	return Policy{
		Status:      DeriveStatus,
		Role:        NewRoleRule("admin.ornor", 3),
		OnePerVoter: false,
	}
}

// PolicyFromConfig builds the runtime policy from the loaded configuration.
func PolicyFromConfig() Policy {
	cfg := config.AppConfig
	if cfg == nil {
		return DefaultPolicy()
	}
	return Policy{
		Status:      DeriveStatus,
		Role:        NewRoleRule(cfg.Policy.AdminDomain, cfg.Policy.MemberThreshold),
		OnePerVoter: cfg.Policy.OnePerVoter,
	}
}
