/*
Package textspan holds UTF-8 text which either owns its bytes or borrows them
from a longer-lived buffer.

Line-wrapping slices text spans over and over. If a span is just a view into
the paragraph's buffer, slicing it must not copy. If a span owns its bytes
(e.g., after a text transformation), slicing it yields a new owned copy, so
the original buffer may be dropped independently. Text keeps track of which
of the two modes applies and preserves it across SliceFrom and SliceTo.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textspan
