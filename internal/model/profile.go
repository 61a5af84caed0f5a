package model

import "time"

type SocialLinks struct {
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   string `bson:"github,omitempty" json:"github,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
}

// Profile is the singleton document behind the public site header.
type Profile struct {
	ID              string      `db:"id" bson:"_id" json:"_id"`
	Name            string      `db:"name" bson:"name" json:"name"`
	Title           string      `db:"title" bson:"title" json:"title"`
	Bio             string      `db:"bio" bson:"bio" json:"bio"`
	Email           string      `db:"email" bson:"email" json:"email"`
	Phone           string      `db:"phone" bson:"phone" json:"phone"`
	Location        string      `db:"location" bson:"location" json:"location"`
	ProfileImageURL string      `db:"profile_image_url" bson:"profileImageUrl" json:"profileImageUrl"`
	CVURL           string      `db:"cv_url" bson:"cvUrl,omitempty" json:"cvUrl,omitempty"`
	TypingTexts     StringList  `db:"typing_texts" bson:"typingTexts" json:"typingTexts"`
	SocialLinks     SocialLinks `db:"social_links" bson:"socialLinks" json:"socialLinks"`
	CreatedAt       time.Time   `db:"created_at" bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `db:"updated_at" bson:"updatedAt" json:"updatedAt"`
}

// ProfileAsset names a profile field that points at an uploaded file.
// Assets are written one field at a time so an upload never overwrites
// concurrent edits to the rest of the profile.
type ProfileAsset string

const (
	ProfileImage ProfileAsset = "profileImageUrl"
	ProfileCV    ProfileAsset = "cvUrl"
)

const DefaultBio = "Expert en pilotage de projets transversaux et analyse stratégique, diplômé en Entrepreneuriat. " +
	"Je combine une rigueur méthodologique avec des compétences techniques pour concevoir des solutions innovantes."

// DefaultProfile returns the profile served before the admin edits anything.
func DefaultProfile() *Profile {
	return &Profile{
		Name:            "Cheick Ahmed Thiam",
		Title:           "Consultant en Stratégie & Développement de Projets | Développeur Full Stack",
		Bio:             DefaultBio,
		Email:           "contact@cheickthiam.com",
		Phone:           "+33 6 00 00 00 00",
		Location:        "Paris, France",
		ProfileImageURL: "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_960_720.png",
		TypingTexts: StringList{
			"Consultant en Stratégie & Développement",
			"Développeur Full Stack",
			"Expert en Gestion de Projet",
			"Expert en Entrepreneuriat",
		},
	}
}

type SocialLinksPatch struct {
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Twitter  *string `json:"twitter"`
}

type ProfilePatch struct {
	Name            *string           `json:"name"`
	Title           *string           `json:"title"`
	Bio             *string           `json:"bio"`
	Email           *string           `json:"email"`
	Phone           *string           `json:"phone"`
	Location        *string           `json:"location"`
	ProfileImageURL *string           `json:"profileImageUrl"`
	CVURL           *string           `json:"cvUrl"`
	TypingTexts     *StringList       `json:"typingTexts"`
	SocialLinks     *SocialLinksPatch `json:"socialLinks"`
}

func (p ProfilePatch) Apply(pr *Profile) {
	setString(&pr.Name, p.Name)
	setString(&pr.Title, p.Title)
	if p.Bio != nil {
		pr.Bio = *p.Bio
	}
	setString(&pr.Email, p.Email)
	setString(&pr.Phone, p.Phone)
	setString(&pr.Location, p.Location)
	setString(&pr.ProfileImageURL, p.ProfileImageURL)
	setString(&pr.CVURL, p.CVURL)
	setList(&pr.TypingTexts, p.TypingTexts)
	if p.SocialLinks != nil {
		setString(&pr.SocialLinks.LinkedIn, p.SocialLinks.LinkedIn)
		setString(&pr.SocialLinks.GitHub, p.SocialLinks.GitHub)
		setString(&pr.SocialLinks.Twitter, p.SocialLinks.Twitter)
	}
}
