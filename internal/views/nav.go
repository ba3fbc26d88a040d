package views

import "digitalcafe/cafectl/internal/model"

type MenuEntry struct {
	Label   string
	Command string
}

// MenuFor is the role-gated navigation set: five mutually exclusive menus,
// derived from the cached role only.
func MenuFor(role model.Role) []MenuEntry {
	switch role {
	case model.RoleAdmin:
		return []MenuEntry{
			{Label: "Cafes", Command: "admin cafes"},
			{Label: "Cafe Owners", Command: "admin owners"},
			{Label: "Dashboard", Command: "admin dashboard"},
		}
	case model.RoleCafeOwner:
		return []MenuEntry{
			{Label: "Staff", Command: "owner staff"},
			{Label: "Menu", Command: "owner menu"},
			{Label: "Tables", Command: "owner tables"},
			{Label: "Bookings", Command: "owner bookings"},
			{Label: "Orders", Command: "owner orders"},
		}
	case model.RoleChef:
		return []MenuEntry{
			{Label: "Orders to prepare", Command: "chef orders"},
		}
	case model.RoleWaiter:
		return []MenuEntry{
			{Label: "Orders", Command: "waiter orders"},
		}
	default:
		return []MenuEntry{
			{Label: "Cafes", Command: "cafes"},
			{Label: "My Bookings", Command: "bookings"},
			{Label: "My Orders", Command: "orders"},
		}
	}
}

// Menu prints the navigation for the signed-in user.
func (v *View) Menu() {
	user := v.session.User()
	if user == nil {
		v.printf("Not signed in. Use 'cafectl login' or 'cafectl register'.\n")
		return
	}
	v.printf("Signed in as %s (%s)\n", user.Name, user.Role())
	for _, entry := range MenuFor(user.Role()) {
		v.printf("  %-20s cafectl %s\n", entry.Label, entry.Command)
	}
}
