package dal

import (
	"gorm.io/gorm"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	playlistdb "vidtube.com/cmd/playlist/dal/db"
	relationdb "vidtube.com/cmd/relation/dal/db"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
)

// Init points every data-access package at db.
func Init(db *gorm.DB) {
	userdb.Init(db)
	videodb.Init(db)
	interactiondb.Init(db)
	tweetdb.Init(db)
	playlistdb.Init(db)
	relationdb.Init(db)
}
