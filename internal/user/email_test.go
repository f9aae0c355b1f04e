package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlvaroRaul7/wpz-test/internal/user"
)

func TestCalculateEmail(t *testing.T) {
	tests := []struct {
		name string
		user user.User
		want string
	}{
		{
			name: "internal uses firstname.lastname",
			user: user.User{ID: 1, FirstName: "John", LastName: "Doe", Type: user.TypeInternal},
			want: "john.doe@wps-allianz.de",
		},
		{
			name: "external swaps name order and adds prefix",
			user: user.User{ID: 2, FirstName: "Jane", LastName: "Smith", Type: user.TypeExternal},
			want: "external_smith.jane@wps-allianz.de",
		},
		{
			name: "internal strips spaces",
			user: user.User{ID: 10, FirstName: "First Name", LastName: "Last Name", Type: user.TypeInternal},
			want: "firstname.lastname@wps-allianz.de",
		},
		{
			name: "external strips spaces",
			user: user.User{ID: 11, FirstName: "Another Name", LastName: "Family Name", Type: user.TypeExternal},
			want: "external_familyname.anothername@wps-allianz.de",
		},
		{
			name: "mixed case is lowered",
			user: user.User{ID: 12, FirstName: "PETER", LastName: "JoNeS", Type: user.TypeInternal},
			want: "peter.jones@wps-allianz.de",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, user.CalculateEmail(tt.user))
		})
	}
}
