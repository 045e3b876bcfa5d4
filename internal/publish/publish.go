package publish

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/andybalholm/brotli"

	"github.com/pfrederiksen/golf-catalog/internal/course"
	"github.com/pfrederiksen/golf-catalog/internal/logger"
	"github.com/pfrederiksen/golf-catalog/internal/storage"
)

// DefaultImageURLPrefix is the public path images are served under.
const DefaultImageURLPrefix = "/images"

// Config controls where the public copy goes.
type Config struct {
	OutputPath     string     `yaml:"output_path" env:"PUBLISH_OUTPUT"`
	ImagesDir      string     `yaml:"images_dir" env:"PUBLISH_IMAGES_DIR"`
	ImageURLPrefix string     `yaml:"image_url_prefix" env-default:"/images"`
	GameplayImage  string     `yaml:"gameplay_image" env:"PUBLISH_GAMEPLAY_IMAGE"`
	Brotli         bool       `yaml:"brotli"`
	BrotliQuality  int        `yaml:"brotli_quality" env-default:"11"`
	SFTP           SFTPConfig `yaml:"sftp"`
}

// Enabled reports whether a public copy is configured.
func (c Config) Enabled() bool {
	return c.OutputPath != ""
}

// Report describes one published copy.
type Report struct {
	Path       string `json:"path"`
	Records    int    `json:"records"`
	WithImages int    `json:"with_images"`
	Compressed string `json:"compressed,omitempty"`
	Uploaded   bool   `json:"uploaded"`
}

// Publisher writes an image-annotated copy of the store to the public
// location. The store itself is never modified.
type Publisher struct {
	cfg      Config
	uploader Uploader
	log      *logger.Logger
	last     *Report
}

// New creates a Publisher. uploader may be nil to skip the remote copy.
func New(cfg Config, uploader Uploader, log *logger.Logger) *Publisher {
	if cfg.ImageURLPrefix == "" {
		cfg.ImageURLPrefix = DefaultImageURLPrefix
	}
	if cfg.BrotliQuality <= 0 || cfg.BrotliQuality > brotli.BestCompression {
		cfg.BrotliQuality = brotli.BestCompression
	}
	if log == nil {
		log = logger.Default()
	}
	return &Publisher{cfg: cfg, uploader: uploader, log: log}
}

// LastReport returns the report of the most recent successful Publish.
func (p *Publisher) LastReport() *Report {
	return p.last
}

// Build renders the public copy of cat without writing it.
func (p *Publisher) Build(cat *course.Catalog) ([]byte, *Report, error) {
	public := cat.Clone()

	withImages, err := Annotate(public, ImageSource{
		Dir:       p.cfg.ImagesDir,
		URLPrefix: p.cfg.ImageURLPrefix,
		Gameplay:  p.cfg.GameplayImage,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("annotating images: %w", err)
	}

	data, err := storage.Encode(public)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding public copy: %w", err)
	}

	return data, &Report{
		Path:       p.cfg.OutputPath,
		Records:    public.Len(),
		WithImages: withImages,
	}, nil
}

// Publish writes the public copy, an optional brotli sibling, and uploads
// both when an uploader is set.
func (p *Publisher) Publish(ctx context.Context, cat *course.Catalog) error {
	if !p.cfg.Enabled() {
		return nil
	}

	data, report, err := p.Build(cat)
	if err != nil {
		return err
	}

	if err := storage.WriteAtomic(p.cfg.OutputPath, data); err != nil {
		return fmt.Errorf("writing public copy: %w", err)
	}
	files := []string{p.cfg.OutputPath}

	if p.cfg.Brotli {
		compressed, err := Compress(data, p.cfg.BrotliQuality)
		if err != nil {
			return fmt.Errorf("compressing public copy: %w", err)
		}
		brPath := p.cfg.OutputPath + ".br"
		if err := storage.WriteAtomic(brPath, compressed); err != nil {
			return fmt.Errorf("writing compressed copy: %w", err)
		}
		report.Compressed = brPath
		files = append(files, brPath)
	}

	if p.uploader != nil {
		for _, f := range files {
			if err := p.uploader.Upload(ctx, f, filepath.Base(f)); err != nil {
				return fmt.Errorf("uploading %s: %w", filepath.Base(f), err)
			}
		}
		report.Uploaded = true
	}

	p.last = report
	p.log.Info("Public copy written", logger.Fields{
		"path":        report.Path,
		"records":     report.Records,
		"with_images": report.WithImages,
		"uploaded":    report.Uploaded,
	})
	return nil
}

// Compress returns data brotli-compressed at the given quality.
func Compress(data []byte, quality int) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, quality)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
