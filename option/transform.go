package option

// Map returns Some(fn(v)) when o holds v, otherwise None.
// fn is not called on None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}

	return Some(fn(v))
}

// AndThen returns fn(v) when o holds v, otherwise None. It chains
// computations that may themselves produce nothing, without nesting
// presence checks. fn is not called on None.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}

	return fn(v)
}
