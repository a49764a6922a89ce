// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lpc compresses streams of 16-bit samples with backward-adaptive
linear prediction.

Each sample is predicted from the preceding reconstructed samples and only
the residual is coded. The predictor coefficients are re-estimated after
every block from the reconstructed samples of that block and are used for
the following block. Since the reader sees exactly the reconstructed
samples, it derives the same coefficients and no coefficients are part of
the stream.

The Writer may code a sample lossily if the residual coder truncates the
residual. Write returns the value the Reader will produce for the sample.

	var buf bytes.Buffer
	w, err := lpc.NewWriter(&buf, lpc.Config{})
	...
	for _, v := range samples {
		if _, err = w.Write(v); err != nil {
			...
		}
	}
	if err = w.Close(); err != nil {
		...
	}
	r, err := lpc.NewReader(&buf, lpc.Config{})
	...
	for {
		v, err := r.Read()
		if err == io.EOF {
			break
		}
		...
	}

Writers and Readers are not safe for concurrent use.
*/
package lpc
