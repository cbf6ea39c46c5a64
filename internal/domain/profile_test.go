package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() Profile {
	return Profile{
		FirstName: "James",
		LastName:  "Smith",
		Age:       34,
		State:     "Colorado",
		Job:       JobEmployed,
		Type:      TypeChecking,
	}
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
		ok     bool
	}{
		{name: "valid", mutate: func(*Profile) {}, ok: true},
		{name: "oldest allowed", mutate: func(p *Profile) { p.Age = MaxAge }, ok: true},
		{name: "youngest allowed", mutate: func(p *Profile) { p.Age = MinAge }, ok: true},
		{name: "missing first name", mutate: func(p *Profile) { p.FirstName = "" }},
		{name: "missing last name", mutate: func(p *Profile) { p.LastName = "" }},
		{name: "under age", mutate: func(p *Profile) { p.Age = MinAge - 1 }},
		{name: "over age", mutate: func(p *Profile) { p.Age = MaxAge + 1 }},
		{name: "missing state", mutate: func(p *Profile) { p.State = "" }},
		{name: "unknown job", mutate: func(p *Profile) { p.Job = "astronaut" }},
		{name: "unknown account type", mutate: func(p *Profile) { p.Type = "offshore" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := p.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestParseJob(t *testing.T) {
	for _, job := range []Job{JobEmployed, JobUnemployed, JobRetired} {
		got, err := ParseJob(string(job))
		require.NoError(t, err)
		assert.Equal(t, job, got)
	}

	_, err := ParseJob("Employed")
	require.Error(t, err, "job values are lowercase on the wire")
}

func TestParseAccountType(t *testing.T) {
	for _, typ := range []AccountType{TypeChecking, TypeSavings} {
		got, err := ParseAccountType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParseAccountType("current")
	require.Error(t, err)
}
