package publish

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/igolf"
)

// Image slots, searched in this order.
const (
	SlotHero = "hero"
)

var (
	additionalSlots = []string{"1", "2"}
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)

// Images is the public image block of a record.
type Images struct {
	Hero       *string  `json:"hero"`
	Additional []string `json:"additional"`
}

// FindImages looks for <id>_hero, <id>_1 and <id>_2 in dir with any known
// extension and returns their public URLs under urlPrefix.
func FindImages(dir, urlPrefix, id string) Images {
	images := Images{Additional: []string{}}

	if name, ok := findSlot(dir, id, SlotHero); ok {
		url := ImageURL(urlPrefix, name)
		images.Hero = &url
	}
	for _, slot := range additionalSlots {
		if name, ok := findSlot(dir, id, slot); ok {
			images.Additional = append(images.Additional, ImageURL(urlPrefix, name))
		}
	}
	return images
}

// ImageURL joins a file name onto a path or absolute URL prefix.
func ImageURL(urlPrefix, name string) string {
	if urlPrefix == "" {
		return name
	}
	return strings.TrimRight(urlPrefix, "/") + "/" + name
}

func findSlot(dir, id, slot string) (string, bool) {
	for _, ext := range imageExtensions {
		name := id + "_" + slot + ext
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && !info.IsDir() {
			return name, true
		}
	}
	return "", false
}

// ImageSource locates course images and the shared gameplay screenshot.
type ImageSource struct {
	Dir       string
	URLPrefix string
	// Gameplay is a file name under URLPrefix. When set it is appended to
	// every record's additional images and used as the hero of igolf
	// records, which have no photos of their own.
	Gameplay string
}

// Annotate sets images, hasImage and imageUrl on every record of cat and
// returns how many records have a hero photo. igolf records showing the
// gameplay image keep hasImage false.
func Annotate(cat *course.Catalog, src ImageSource) (int, error) {
	var gameplay string
	if src.Gameplay != "" {
		gameplay = ImageURL(src.URLPrefix, src.Gameplay)
	}

	withImage := 0
	for _, c := range cat.Courses {
		images := FindImages(src.Dir, src.URLPrefix, c.ID())
		hasImage := images.Hero != nil
		if hasImage {
			withImage++
		}

		if gameplay != "" {
			images.Additional = append(images.Additional, gameplay)
			if igolf.IsIgolf(c) && images.Hero == nil {
				hero := gameplay
				images.Hero = &hero
			}
		}

		if _, err := c.Set(course.FieldImages, images); err != nil {
			return withImage, err
		}
		if _, err := c.Set(course.FieldHasImage, hasImage); err != nil {
			return withImage, err
		}
		if _, err := c.Set(course.FieldImageURL, images.Hero); err != nil {
			return withImage, err
		}
	}
	return withImage, nil
}
