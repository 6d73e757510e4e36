package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles a user document may carry. The register route stores whatever role
// the client supplies; these constants are what the gates check against.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User is a marketplace account, keyed by email.
// Verified and Deleted are flags set by admin actions; both are absent on a
// freshly registered account.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	Photo    string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Verified bool               `bson:"verified,omitempty" json:"verified,omitempty"`
	Deleted  bool               `bson:"deleted,omitempty" json:"deleted,omitempty"`
}
