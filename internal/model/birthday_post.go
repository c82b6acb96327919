package model

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// BirthdayPost is a message left on the birthday wall. Posts are never edited.
type BirthdayPost struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:text;not null;check:chk_birthday_posts_name,name <> ''" json:"name"`
	Message   string    `gorm:"type:text;not null;check:chk_birthday_posts_message,message <> ''" json:"message"`
	ImageURLs ImageURLs `gorm:"column:image_urls;not null" json:"image_urls"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// ImageURLs is an ordered list of opaque image URLs. Postgres stores it as text[];
// other dialects get the same array literal in a text column.
type ImageURLs []string

func (u ImageURLs) Value() (driver.Value, error) {
	if u == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(u).Value()
}

func (u *ImageURLs) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	if arr == nil {
		arr = pq.StringArray{}
	}
	*u = ImageURLs(arr)
	return nil
}

func (ImageURLs) GormDataType() string {
	return "text[]"
}

func (ImageURLs) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
