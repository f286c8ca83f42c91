package graph

import "testing"

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleOwner, RoleGameMaster, RolePlayer, RoleViewer} {
		if !ValidRole(r) {
			t.Errorf("expected %q to be a valid role", r)
		}
	}
	for _, r := range []Role{"", "ADMIN", "owner", "Game_Master"} {
		if ValidRole(r) {
			t.Errorf("expected %q to be rejected", r)
		}
	}
}

func TestValidEntityType(t *testing.T) {
	for _, et := range []EntityType{EntityCharacter, EntityLocation, EntityEvent, EntityItem} {
		if !ValidEntityType(et) {
			t.Errorf("expected %q to be a valid entity type", et)
		}
	}
	for _, et := range []EntityType{"", "SESSION", "character", "NPC"} {
		if ValidEntityType(et) {
			t.Errorf("expected %q to be rejected", et)
		}
	}
}
