// Copyright (c) 2012-present The sqlcraft authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package sqlcraft assembles SQL query strings from declarative
// configuration and a fluent builder interface.
//
// sqlcraft is a text-generation utility: given table names, column lists,
// conditions and clause fragments supplied as plain strings, it concatenates
// them into syntactically shaped SQL statements. There is no parsing, no
// validation against a schema, no execution and no protection against
// malformed or unsafe input; conditions and fragments are inserted verbatim,
// and escaping them is the caller's responsibility.
//
// The two main entry points live in subpackages:
//
//   - github.com/sqlcraft/sqlcraft/stencil renders named templates with
//     placeholder substitution.
//   - github.com/sqlcraft/sqlcraft/sqlbuilder accumulates clause fragments
//     through chained calls and renders them in a fixed clause order.
//
// The variation subpackage produces fixed lists of ready-made query shapes
// from a declarative configuration.
package sqlcraft
