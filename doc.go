// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Tapir is the array core of an APL-family language runtime. This module
holds the engine only: dense shape-polymorphic arrays over
copy-on-write storage and the dyadic transformation suite, with no
tokenizer, parser, or evaluator.

The cow package provides the reference-counted buffer that makes
cloning and slicing arrays O(1). The value package builds typed arrays
and the polymorphic Value layer on top of it and implements reshape,
rerank, keep, rotate, windows, find, member, index-of, pick, take,
drop, and select, together with the undo operations that splice an
edited result back into the array it came from.
*/
package tapir
