package blogservice

import (
	"strings"

	"github.com/sushihentaime/postly/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(strings.TrimSpace(title) != "", "title", "must be provided")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
