package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeOn(t *testing.T) {
	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 17, AgeOn(dob, time.Date(2018, 6, 14, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, AgeOn(dob, time.Date(2018, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, AgeOn(dob, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestUserVerification_TokenValid(t *testing.T) {
	now := time.Now()
	expires := now.Add(time.Hour)
	v := &UserVerification{VerificationToken: "abc", TokenExpiresAt: &expires}

	assert.True(t, v.TokenValid("abc", now))
	assert.False(t, v.TokenValid("abd", now))
	assert.False(t, v.TokenValid("abc", now.Add(2*time.Hour)))
	assert.False(t, (&UserVerification{}).TokenValid("", now))
}

func TestRole_IsSelfRegistrable(t *testing.T) {
	assert.True(t, RoleBuyer.IsSelfRegistrable())
	assert.True(t, RoleSeller.IsSelfRegistrable())
	assert.False(t, RoleAdmin.IsSelfRegistrable())
	assert.False(t, Role("guest").IsValid())
}

func TestRolesFromStrings_FiltersUnknown(t *testing.T) {
	roles := RolesFromStrings([]string{"buyer", "root", "admin"})

	assert.Equal(t, Roles{RoleBuyer, RoleAdmin}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.Equal(t, []string{"buyer", "admin"}, roles.ToStrings())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(0, 0, 12)
	assert.Equal(t, Pagination{Page: 1, PageSize: 12}, p)
	assert.Equal(t, 0, p.Offset())

	p = NewPagination(3, 500, 12)
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 200, p.Offset())
}

func TestNewPageResult(t *testing.T) {
	res := NewPageResult([]int{1, 2}, Pagination{Page: 2, PageSize: 2}, 5)

	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, int64(5), res.Total)

	empty := NewPageResult[int](nil, Pagination{Page: 1, PageSize: 10}, 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}
