package userservice

import (
	"github.com/sushihentaime/postly/internal/common"
)

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}

func validateSignup(v *common.Validator, in SignupInput) {
	v.CheckStruct(in)
	v.Check(len(in.Password) <= maxPasswordBytes, "password", "must not be more than 72 bytes long")
}

func validateUpdate(v *common.Validator, in UpdateUserInput) {
	v.CheckStruct(in)
	v.Check(in.Name != nil || in.Bio != nil || in.Password != nil, "input", "at least one field must be provided")
}
