package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"fusus-cli/pkg/models"
)

// userWriteDelay is the self-imposed rate limit between successive PATCHes.
const userWriteDelay = 250 * time.Millisecond

// FetchAllUsers walks /api/users/ until a short or empty page, with the
// same delay between pages that the bulk writes use.
func (c *Client) FetchAllUsers() ([]models.User, error) {
	opts := FetchOptions{
		SizeParam:       "page_size",
		PageSize:        60,
		Retries:         3,
		StopOnShortPage: true,
		PageDelay:       userWriteDelay,
	}
	return fetchAllPages(c, "/api/users/", nil, opts, unwrapResults[models.User])
}

// UpdateUser resends the complete record. The vendor rejects partial
// PATCHes, which is why callers must read before writing.
func (c *Client) UpdateUser(u models.User) error {
	resp, err := c.HTTP.R().
		SetHeader("Content-Type", "application/json").
		SetBody(u).
		Patch(fmt.Sprintf("/api/users/%d/", u.ID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}

// MatchingUsers selects the accounts whose email ends with oldDomain,
// case-insensitively.
func MatchingUsers(users []models.User, oldDomain string) []models.User {
	suffix := strings.ToLower(oldDomain)
	return lo.Filter(users, func(u models.User, _ int) bool {
		return strings.HasSuffix(strings.ToLower(u.Email), suffix)
	})
}

// RewriteDomain swaps the domain suffix, preserving the mailbox part and
// its original casing.
func RewriteDomain(email, oldDomain, newDomain string) string {
	if len(email) < len(oldDomain) {
		return email
	}
	return email[:len(email)-len(oldDomain)] + newDomain
}

// MigrationReport tallies one bulk domain migration.
type MigrationReport struct {
	Matched int
	Updated int
	Failed  int
}

// MigrateDomain rewrites every matching address to the new domain, one
// record at a time. A failed record is reported through progress and does
// not abort the batch.
func (c *Client) MigrateDomain(users []models.User, oldDomain, newDomain string, progress func(u models.User, newEmail string, err error)) MigrationReport {
	matched := MatchingUsers(users, oldDomain)
	report := MigrationReport{Matched: len(matched)}

	for _, u := range matched {
		newEmail := RewriteDomain(u.Email, oldDomain, newDomain)
		updated := u
		updated.Email = newEmail

		err := c.UpdateUser(updated)
		if err != nil {
			report.Failed++
		} else {
			report.Updated++
		}
		if progress != nil {
			progress(u, newEmail, err)
		}
		time.Sleep(userWriteDelay)
	}
	return report
}
