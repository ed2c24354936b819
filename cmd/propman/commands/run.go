package commands

import (
	"io/fs"
	"slices"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/propman/internal/errors"
	"github.com/thoreinstein/propman/internal/logging"
	"github.com/thoreinstein/propman/internal/paths"
	"github.com/thoreinstein/propman/internal/preview"
	"github.com/thoreinstein/propman/internal/property"
	"github.com/thoreinstein/propman/pkg/fileutil"
)

// runEdit reads the note, applies the plan built from flags and config and
// emits the result.
func (a *app) runEdit(c *cobra.Command) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	if a.opts.file == "" {
		return errors.NewUserError(errors.ErrMissingFile, "pass the note with -f <path>")
	}

	path, err := paths.ExpandHome(a.opts.file)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	log := a.logger.With("file", path)

	data, err := fileutil.ReadFileWithLimit(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.NewUserError(errors.Wrap(errors.ErrFileNotFound, path), "check the path given to --file")
	case err != nil:
		return errors.NewSystemError(errors.Wrapf(err, "reading %s", path), "")
	}

	base := fileutil.Digest(data)
	log.Debug("file read", "bytes", len(data), "digest", base)

	doc := property.Parse(string(data))
	plan := property.Plan{
		All:    cfg.All,
		Move:   slices.Clone(cfg.Move),
		Remove: slices.Clone(cfg.Remove),
	}

	if a.opts.interactive {
		picked, err := pickProperties(doc)
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		for _, name := range picked {
			if !slices.Contains(plan.Move, name) {
				plan.Move = append(plan.Move, name)
			}
		}
	}

	log.Debug("applying plan", "all", plan.All, "move", plan.Move, "remove", plan.Remove)
	res := property.NewEditor(log).Apply(doc, plan)
	log.Info("done", "actions", len(res.Actions), "missing", len(res.Missing))

	if a.opts.test {
		mode, err := logging.ParseColorMode(cfg.Color)
		if err != nil {
			mode = logging.ColorAuto
		}
		if err := preview.Write(c.OutOrStdout(), doc, preview.Options{Color: mode, Style: cfg.Style}); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	if !a.opts.write {
		if !a.opts.test {
			log.Warn("nothing written, pass --test to preview or --write to save")
		}
		return nil
	}

	written, err := fileutil.WriteIfChanged(path, []byte(doc.String()), base)
	if errors.Is(err, fileutil.ErrModified) {
		return errors.NewUserError(err, "the note changed while propman was running, run it again")
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing %s", path), "")
	}
	if written {
		log.Info("file written")
	} else {
		log.Info("file unchanged, not written")
	}
	return nil
}
