/*
 * write.go, part of spinverter.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mnova

import (
	"io"
	"os"

	"github.com/rmera/spinverter"
	"github.com/rmera/spinverter/mms"
	"github.com/rmera/spinverter/pms"
)

//The model is resolved completely before anything is written, so a
//resolution error leaves the output untouched.

// WriteMMS writes F to w as spin-sim XML. At most one Options is used.
func WriteMMS(w io.Writer, F *mms.File, opts ...Options) error {
	doc, err := FromMMS(F, options(opts))
	if err != nil {
		return spinverter.ErrDecorate(err, "WriteMMS")
	}
	return spinverter.ErrDecorate(Encode(w, doc), "WriteMMS")
}

// WritePMS writes F to w as spin-sim XML. At most one Options is used.
func WritePMS(w io.Writer, F *pms.File, opts ...Options) error {
	doc, err := FromPMS(F, options(opts))
	if err != nil {
		return spinverter.ErrDecorate(err, "WritePMS")
	}
	return spinverter.ErrDecorate(Encode(w, doc), "WritePMS")
}

// WriteMMSFile is WriteMMS to the file name, which is compressed if its
// suffix asks for it. The file is removed if writing fails.
func WriteMMSFile(name string, F *mms.File, opts ...Options) error {
	doc, err := FromMMS(F, options(opts))
	if err != nil {
		return spinverter.ErrDecorate(err, "WriteMMSFile")
	}
	return spinverter.ErrDecorate(WriteFile(name, doc), "WriteMMSFile")
}

// WritePMSFile is WritePMS to the file name.
func WritePMSFile(name string, F *pms.File, opts ...Options) error {
	doc, err := FromPMS(F, options(opts))
	if err != nil {
		return spinverter.ErrDecorate(err, "WritePMSFile")
	}
	return spinverter.ErrDecorate(WriteFile(name, doc), "WritePMSFile")
}

// WriteFile encodes doc into the file name. The file is removed if
// encoding or closing it fails.
func WriteFile(name string, doc *Document) error {
	w, err := spinverter.Create(name)
	if err != nil {
		return err
	}
	err = Encode(w, doc)
	if cerr := w.Close(); err == nil && cerr != nil {
		E := spinverter.Wrap(cerr, spinverter.IOFailure, "mnova", "can't close output")
		E.FileName = name
		err = E
	}
	if err != nil {
		os.Remove(name)
		return spinverter.Locate(err, 0, "", name)
	}
	return nil
}
