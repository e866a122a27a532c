package model

type Post struct {
	BaseModel
	UserID      uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	User        *User      `gorm:"foreignKey:UserID" json:"-"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	IsAnonymous bool       `gorm:"default:false" json:"isAnonymous"`
	Tags        StringList `gorm:"type:json" json:"tags"`
	Likes       []PostLike `gorm:"foreignKey:PostID" json:"-"`
	Comments    []Comment  `gorm:"foreignKey:PostID" json:"comments"`
}

func (Post) TableName() string {
	return "posts"
}

// PostLike is one user's like on a post; liking twice toggles it off.
type PostLike struct {
	BaseModel
	PostID uint `gorm:"uniqueIndex:idx_post_like;type:bigint unsigned;not null" json:"postId"`
	UserID uint `gorm:"uniqueIndex:idx_post_like;type:bigint unsigned;not null" json:"userId"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

type Comment struct {
	BaseModel
	PostID  uint   `gorm:"index;type:bigint unsigned;not null" json:"postId"`
	UserID  uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	User    *User  `gorm:"foreignKey:UserID" json:"-"`
	Content string `gorm:"type:text;not null" json:"content"`
}

func (Comment) TableName() string {
	return "comments"
}
