package proxy

// Option configures Wrap.
type Option func(*options)

type options struct {
	classifier Classifier
	hooks      HooksInterface
	quoteFix   bool
}

// WithSignatures replaces the not-supported messages matched by the default
// classifier.
func WithSignatures(messages ...string) Option {
	return func(o *options) {
		o.classifier = Signatures(append([]string(nil), messages...))
	}
}

// WithClassifier sets how not-supported failures are recognized.
func WithClassifier(c Classifier) Option {
	return func(o *options) {
		o.classifier = c
	}
}

// WithHooks sets the hooks notified of connections and corrections.
func WithHooks(h HooksInterface) Option {
	return func(o *options) {
		o.hooks = h
	}
}

// WithIdentifierQuoteFix makes DatabaseMetaData.IdentifierQuoteString return
// the empty string. HiveQL has no identifier quoting, but some driver
// versions report a single quote.
func WithIdentifierQuoteFix() Option {
	return func(o *options) {
		o.quoteFix = true
	}
}

func (o options) env() *env {
	e := &env{
		classifier: o.classifier,
		hooks:      o.hooks,
		quoteFix:   o.quoteFix,
	}
	if e.classifier == nil {
		e.classifier = DefaultSignatures()
	}
	if e.hooks == nil {
		e.hooks = &Hooks{}
	}
	return e
}

// env is the read-only state shared by every interceptor created from one
// connection.
type env struct {
	classifier Classifier
	hooks      HooksInterface
	quoteFix   bool
	connID     string
}

func (e *env) forConn(id string) *env {
	c := *e
	c.connID = id
	return &c
}

func (e *env) notSupported(err error) bool {
	return err != nil && e.classifier.NotSupported(err)
}

func (e *env) corrected(kind Kind, op string, defect, failure error) {
	e.hooks.CorrectionFunc(Correction{
		Kind:    kind,
		Op:      op,
		ConnID:  e.connID,
		Err:     defect,
		Failure: failure,
	})
}

// correct returns v, err unless err is a not-supported failure, in which case
// substitute's result is returned instead. The correction is reported once
// substitute has returned.
func correct[T any](e *env, kind Kind, op string, v T, err error, substitute func() (T, error)) (T, error) {
	if !e.notSupported(err) {
		return v, err
	}
	v, serr := substitute()
	e.corrected(kind, op, err, serr)
	return v, serr
}
