// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// polyc provides type inference for a small functional language, as the first stage of a compiler middle end.
//
// The type-system is Hindley-Milner with let-polymorphism. Inference is substitution-based (algorithm W):
// every inference step returns the substitution it solved, and substitutions are threaded through
// sibling sub-expressions so that type-variables solved within one sub-expression are visible to the next.
//
// The later stages of the compiler live in sub-packages:
//
//   * downlevel inlines let-bound functions and statically reduces applications
//   * irgen lowers down-leveled expressions to a minimal typed IR
//   * compile runs the complete pipeline
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Algorithm W Step by Step (Martin Grabmüller): https://github.com/mgrabmueller/AlgorithmW
package polyc
