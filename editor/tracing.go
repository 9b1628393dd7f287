package editor

import "github.com/rs/zerolog"

// Tracing wraps another Editor and logs every call at Debug level (and the
// content-delta windows it streams at Trace), the one place in this module
// the Editor call sequence itself is observable from outside a test.
type Tracing struct {
	Next Editor
	Log  zerolog.Logger
}

var _ Editor = (*Tracing)(nil)

func NewTracing(next Editor, log zerolog.Logger) *Tracing {
	return &Tracing{Next: next, Log: log}
}

func (t *Tracing) ReplaceRoot() (Baton, error) {
	b, err := t.Next.ReplaceRoot()
	t.Log.Debug().Msg("replace_root")
	return b, err
}

func (t *Tracing) ReplaceDirectory(parent Baton, name, ancestorPath string, ancestorRev int64) (Baton, error) {
	b, err := t.Next.ReplaceDirectory(parent, name, ancestorPath, ancestorRev)
	t.Log.Debug().Str("name", name).Str("ancestor", ancestorPath).Int64("rev", ancestorRev).Msg("replace_directory")
	return b, err
}

func (t *Tracing) AddDirectory(parent Baton, name string) (Baton, error) {
	b, err := t.Next.AddDirectory(parent, name)
	t.Log.Debug().Str("name", name).Msg("add_directory")
	return b, err
}

func (t *Tracing) ReplaceFile(parent Baton, name, ancestorPath string, ancestorRev int64) (Baton, error) {
	b, err := t.Next.ReplaceFile(parent, name, ancestorPath, ancestorRev)
	t.Log.Debug().Str("name", name).Str("ancestor", ancestorPath).Int64("rev", ancestorRev).Msg("replace_file")
	return b, err
}

func (t *Tracing) AddFile(parent Baton, name string) (Baton, error) {
	b, err := t.Next.AddFile(parent, name)
	t.Log.Debug().Str("name", name).Msg("add_file")
	return b, err
}

func (t *Tracing) Delete(parent Baton, name string) error {
	err := t.Next.Delete(parent, name)
	t.Log.Debug().Str("name", name).Msg("delete")
	return err
}

func (t *Tracing) ChangeDirProp(dir Baton, name string, value []byte) error {
	err := t.Next.ChangeDirProp(dir, name, value)
	t.Log.Debug().Str("name", name).Bool("deleted", value == nil).Msg("change_dir_prop")
	return err
}

func (t *Tracing) ChangeDirentProp(dir Baton, entryName, name string, value []byte) error {
	err := t.Next.ChangeDirentProp(dir, entryName, name, value)
	t.Log.Debug().Str("entry", entryName).Str("name", name).Bool("deleted", value == nil).Msg("change_dirent_prop")
	return err
}

func (t *Tracing) ChangeFileProp(file Baton, name string, value []byte) error {
	err := t.Next.ChangeFileProp(file, name, value)
	t.Log.Debug().Str("name", name).Bool("deleted", value == nil).Msg("change_file_prop")
	return err
}

func (t *Tracing) ApplyTextDelta(file Baton) (TextDeltaHandler, error) {
	handler, err := t.Next.ApplyTextDelta(file)
	t.Log.Debug().Msg("apply_text_delta")
	if handler == nil {
		return nil, err
	}
	return func(window *TextDeltaWindow) error {
		if window == nil {
			t.Log.Trace().Msg("text_delta_end")
		} else {
			t.Log.Trace().Int("bytes", len(window.Data)).Msg("text_delta_window")
		}
		return handler(window)
	}, err
}

func (t *Tracing) CloseFile(file Baton) error {
	err := t.Next.CloseFile(file)
	t.Log.Debug().Msg("close_file")
	return err
}

func (t *Tracing) CloseDirectory(dir Baton) error {
	err := t.Next.CloseDirectory(dir)
	t.Log.Debug().Msg("close_directory")
	return err
}
