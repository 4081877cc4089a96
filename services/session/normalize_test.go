package session

import (
	"testing"

	"glowdesk/backend"
	"glowdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLoginShapes(t *testing.T) {
	cases := []struct {
		name string
		resp *backend.LoginResponse
		want models.Session
	}{
		{
			name: "top level identity",
			resp: &backend.LoginResponse{
				Token: "tok",
				ID:    "sty1",
				Name:  "Amara",
				Email: "amara@example.com",
			},
			want: models.Session{
				StylistID:    "sty1",
				Name:         "Amara",
				Email:        "amara@example.com",
				BackendToken: "tok",
			},
		},
		{
			name: "identity under user",
			resp: &backend.LoginResponse{
				Token: "tok",
				User:  &backend.LoginIdentity{ID: "sty2", Name: "Nia", Email: "nia@example.com"},
			},
			want: models.Session{
				StylistID:    "sty2",
				Name:         "Nia",
				Email:        "nia@example.com",
				BackendToken: "tok",
			},
		},
		{
			name: "identity under stylist",
			resp: &backend.LoginResponse{
				Token:   "tok",
				Stylist: &backend.LoginIdentity{ID: "sty3", Name: "Zoe"},
			},
			want: models.Session{
				StylistID:    "sty3",
				Name:         "Zoe",
				Email:        "login@example.com",
				BackendToken: "tok",
			},
		},
		{
			name: "stylist_id inside user block",
			resp: &backend.LoginResponse{
				Token: "tok",
				User:  &backend.LoginIdentity{StylistID: "sty4", Name: "Imani"},
			},
			want: models.Session{
				StylistID:    "sty4",
				Name:         "Imani",
				Email:        "login@example.com",
				BackendToken: "tok",
			},
		},
		{
			name: "top level stylist_id as last resort",
			resp: &backend.LoginResponse{
				Token:     "tok",
				StylistID: "sty5",
			},
			want: models.Session{
				StylistID:    "sty5",
				Email:        "login@example.com",
				BackendToken: "tok",
			},
		},
		{
			name: "first populated location wins field by field",
			resp: &backend.LoginResponse{
				Token:   "tok",
				Name:    "Top",
				User:    &backend.LoginIdentity{ID: "sty6", Email: "user@example.com"},
				Stylist: &backend.LoginIdentity{ID: "other", Name: "Nested"},
			},
			want: models.Session{
				StylistID:    "sty6",
				Name:         "Top",
				Email:        "user@example.com",
				BackendToken: "tok",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeLogin(tc.resp, "login@example.com")
			require.NoError(t, err)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestNormalizeLoginRejectsMissingToken(t *testing.T) {
	_, err := normalizeLogin(nil, "a@b.com")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = normalizeLogin(&backend.LoginResponse{ID: "sty1"}, "a@b.com")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestNormalizeLoginRejectsMissingIdentity(t *testing.T) {
	_, err := normalizeLogin(&backend.LoginResponse{Token: "tok", Name: "No ID"}, "a@b.com")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
