package dal

import (
	"vidtube.com/cmd/dal/db"
)

func Init() {
	db.Init()
}
