// Package publisher writes rendered outputs to the publish directory.
package publisher

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	bp "github.com/sunwei/pagegen/bufferpool"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/config"
	"github.com/sunwei/pagegen/helpers"
	"github.com/sunwei/pagegen/minifiers"
	"github.com/sunwei/pagegen/output"
	"github.com/sunwei/pagegen/transform"
	"github.com/sunwei/pagegen/transform/urlreplacers"
)

// Publisher publishes a result file.
type Publisher interface {
	Publish(d Descriptor) error
}

// Descriptor describes the needed publishing chain for an item.
type Descriptor struct {
	// The content to publish.
	Src io.Reader

	// The OutputFormat of the this content.
	OutputFormat output.Format

	// Where to publish this content. This is a publish dir relative path.
	TargetPath string

	// If set, will replace all root relative URLs with this one.
	AbsURLPath string

	// Enable to minify the output using the OutputFormat defined above to
	// pick the correct minifier configuration.
	Minify bool
}

// NewDestinationPublisher creates a new DestinationPublisher writing to fs.
func NewDestinationPublisher(fs afero.Fs, outputFormats output.Formats, cfg config.Provider) (pub DestinationPublisher, err error) {
	pub = DestinationPublisher{fs: fs}
	pub.min, err = minifiers.New(outputFormats, cfg)
	return
}

// DestinationPublisher is the default and currently only publisher. This
// publisher prepares and publishes an item to the defined destination, e.g. /public.
type DestinationPublisher struct {
	fs  afero.Fs
	min minifiers.Client
}

// Publish applies any relevant transformations and writes the file
// to its destination, e.g. /public. Missing parent directories are created.
func (p DestinationPublisher) Publish(d Descriptor) error {
	if d.TargetPath == "" {
		return errors.New("publish: must provide a TargetPath")
	}

	src := d.Src

	transformers := p.createTransformerChain(d)

	if len(transformers) != 0 {
		b := bp.GetBuffer()
		defer bp.PutBuffer(b)

		if err := transformers.Apply(b, d.Src); err != nil {
			return herrors.NewFileError(herrors.KindIO, d.TargetPath, fmt.Errorf("failed to process: %w", err))
		}

		// This is now what we write to disk.
		src = b
	}

	f, err := helpers.OpenFileForWriting(p.fs, d.TargetPath)
	if err != nil {
		return herrors.NewFileError(herrors.KindIO, d.TargetPath, err)
	}

	if _, err = io.Copy(f, src); err != nil {
		f.Close()
		return herrors.NewFileError(herrors.KindIO, d.TargetPath, err)
	}

	if err := f.Close(); err != nil {
		return herrors.NewFileError(herrors.KindIO, d.TargetPath, err)
	}

	return nil
}

func (p DestinationPublisher) createTransformerChain(f Descriptor) transform.Chain {
	transformers := transform.NewEmpty()

	if !f.OutputFormat.IsHTML {
		return transformers
	}

	if f.AbsURLPath != "" {
		transformers = append(transformers, urlreplacers.NewAbsURLTransformer(f.AbsURLPath))
	}

	if f.Minify {
		if min := p.min.Transformer(f.OutputFormat.MediaType); min != nil {
			transformers = append(transformers, min)
		}
	}

	return transformers
}
