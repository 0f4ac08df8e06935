//go:build npp && cgo

package gonpp

// #include "gonpp_npp.h"
import "C"

func (nppLibrary) resize(f Format, src plane, srcSize Size, srcROI Rect,
	dst plane, dstSize Size, dstROI Rect, interp Interpolation,
	sc *StreamContext) Status {
	ss, sr, ds, dr := csize(srcSize), crect(srcROI), csize(dstSize), crect(dstROI)
	i, c := C.int(interp), cctx(sc)
	switch f {
	case Format8uC1:
		return status(C.nppiResize_8u_C1R_Ctx(u8(src), step(src), ss, sr, u8(dst), step(dst), ds, dr, i, c))
	case Format8uC3:
		return status(C.nppiResize_8u_C3R_Ctx(u8(src), step(src), ss, sr, u8(dst), step(dst), ds, dr, i, c))
	case Format8uC4:
		return status(C.nppiResize_8u_C4R_Ctx(u8(src), step(src), ss, sr, u8(dst), step(dst), ds, dr, i, c))
	case Format16uC1:
		return status(C.nppiResize_16u_C1R_Ctx(u16(src), step(src), ss, sr, u16(dst), step(dst), ds, dr, i, c))
	case Format16uC3:
		return status(C.nppiResize_16u_C3R_Ctx(u16(src), step(src), ss, sr, u16(dst), step(dst), ds, dr, i, c))
	case Format16uC4:
		return status(C.nppiResize_16u_C4R_Ctx(u16(src), step(src), ss, sr, u16(dst), step(dst), ds, dr, i, c))
	case Format16sC1:
		return status(C.nppiResize_16s_C1R_Ctx(s16(src), step(src), ss, sr, s16(dst), step(dst), ds, dr, i, c))
	case Format16sC3:
		return status(C.nppiResize_16s_C3R_Ctx(s16(src), step(src), ss, sr, s16(dst), step(dst), ds, dr, i, c))
	case Format16sC4:
		return status(C.nppiResize_16s_C4R_Ctx(s16(src), step(src), ss, sr, s16(dst), step(dst), ds, dr, i, c))
	case Format32fC1:
		return status(C.nppiResize_32f_C1R_Ctx(f32(src), step(src), ss, sr, f32(dst), step(dst), ds, dr, i, c))
	case Format32fC3:
		return status(C.nppiResize_32f_C3R_Ctx(f32(src), step(src), ss, sr, f32(dst), step(dst), ds, dr, i, c))
	case Format32fC4:
		return status(C.nppiResize_32f_C4R_Ctx(f32(src), step(src), ss, sr, f32(dst), step(dst), ds, dr, i, c))
	}
	return noVariant
}

func (nppLibrary) mirror(f Format, src, dst plane, roi Size, axis Axis,
	sc *StreamContext) Status {
	r, a, c := csize(roi), C.NppiAxis(axis), cctx(sc)
	switch f {
	case Format8uC1:
		return status(C.nppiMirror_8u_C1R_Ctx(u8(src), step(src), u8(dst), step(dst), r, a, c))
	case Format8uC3:
		return status(C.nppiMirror_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, a, c))
	case Format8uC4:
		return status(C.nppiMirror_8u_C4R_Ctx(u8(src), step(src), u8(dst), step(dst), r, a, c))
	case Format16uC1:
		return status(C.nppiMirror_16u_C1R_Ctx(u16(src), step(src), u16(dst), step(dst), r, a, c))
	case Format16uC3:
		return status(C.nppiMirror_16u_C3R_Ctx(u16(src), step(src), u16(dst), step(dst), r, a, c))
	case Format16uC4:
		return status(C.nppiMirror_16u_C4R_Ctx(u16(src), step(src), u16(dst), step(dst), r, a, c))
	case Format16sC1:
		return status(C.nppiMirror_16s_C1R_Ctx(s16(src), step(src), s16(dst), step(dst), r, a, c))
	case Format16sC3:
		return status(C.nppiMirror_16s_C3R_Ctx(s16(src), step(src), s16(dst), step(dst), r, a, c))
	case Format16sC4:
		return status(C.nppiMirror_16s_C4R_Ctx(s16(src), step(src), s16(dst), step(dst), r, a, c))
	case Format32sC1:
		return status(C.nppiMirror_32s_C1R_Ctx(s32(src), step(src), s32(dst), step(dst), r, a, c))
	case Format32sC3:
		return status(C.nppiMirror_32s_C3R_Ctx(s32(src), step(src), s32(dst), step(dst), r, a, c))
	case Format32sC4:
		return status(C.nppiMirror_32s_C4R_Ctx(s32(src), step(src), s32(dst), step(dst), r, a, c))
	case Format32fC1:
		return status(C.nppiMirror_32f_C1R_Ctx(f32(src), step(src), f32(dst), step(dst), r, a, c))
	case Format32fC3:
		return status(C.nppiMirror_32f_C3R_Ctx(f32(src), step(src), f32(dst), step(dst), r, a, c))
	case Format32fC4:
		return status(C.nppiMirror_32f_C4R_Ctx(f32(src), step(src), f32(dst), step(dst), r, a, c))
	}
	return noVariant
}

func (nppLibrary) warpAffine(f Format, src plane, srcSize Size, srcROI Rect,
	dst plane, dstROI Rect, coeffs [2][3]float64, interp Interpolation,
	sc *StreamContext) Status {
	ss, sr, dr := csize(srcSize), crect(srcROI), crect(dstROI)
	i, c := C.int(interp), cctx(sc)
	var k [2][3]C.double
	for y := range coeffs {
		for x, v := range coeffs[y] {
			k[y][x] = C.double(v)
		}
	}
	switch f {
	case Format8uC1:
		return status(C.nppiWarpAffine_8u_C1R_Ctx(u8(src), ss, step(src), sr, u8(dst), step(dst), dr, &k[0], i, c))
	case Format8uC3:
		return status(C.nppiWarpAffine_8u_C3R_Ctx(u8(src), ss, step(src), sr, u8(dst), step(dst), dr, &k[0], i, c))
	case Format8uC4:
		return status(C.nppiWarpAffine_8u_C4R_Ctx(u8(src), ss, step(src), sr, u8(dst), step(dst), dr, &k[0], i, c))
	case Format16uC1:
		return status(C.nppiWarpAffine_16u_C1R_Ctx(u16(src), ss, step(src), sr, u16(dst), step(dst), dr, &k[0], i, c))
	case Format16uC3:
		return status(C.nppiWarpAffine_16u_C3R_Ctx(u16(src), ss, step(src), sr, u16(dst), step(dst), dr, &k[0], i, c))
	case Format16uC4:
		return status(C.nppiWarpAffine_16u_C4R_Ctx(u16(src), ss, step(src), sr, u16(dst), step(dst), dr, &k[0], i, c))
	case Format32fC1:
		return status(C.nppiWarpAffine_32f_C1R_Ctx(f32(src), ss, step(src), sr, f32(dst), step(dst), dr, &k[0], i, c))
	case Format32fC3:
		return status(C.nppiWarpAffine_32f_C3R_Ctx(f32(src), ss, step(src), sr, f32(dst), step(dst), dr, &k[0], i, c))
	case Format32fC4:
		return status(C.nppiWarpAffine_32f_C4R_Ctx(f32(src), ss, step(src), sr, f32(dst), step(dst), dr, &k[0], i, c))
	}
	return noVariant
}

func (nppLibrary) warpPerspective(f Format, src plane, srcSize Size,
	srcROI Rect, dst plane, dstROI Rect, coeffs [3][3]float64,
	interp Interpolation, sc *StreamContext) Status {
	ss, sr, dr := csize(srcSize), crect(srcROI), crect(dstROI)
	i, c := C.int(interp), cctx(sc)
	var k [3][3]C.double
	for y := range coeffs {
		for x, v := range coeffs[y] {
			k[y][x] = C.double(v)
		}
	}
	switch f {
	case Format8uC1:
		return status(C.nppiWarpPerspective_8u_C1R_Ctx(u8(src), ss, step(src), sr, u8(dst), step(dst), dr, &k[0], i, c))
	case Format8uC3:
		return status(C.nppiWarpPerspective_8u_C3R_Ctx(u8(src), ss, step(src), sr, u8(dst), step(dst), dr, &k[0], i, c))
	case Format8uC4:
		return status(C.nppiWarpPerspective_8u_C4R_Ctx(u8(src), ss, step(src), sr, u8(dst), step(dst), dr, &k[0], i, c))
	case Format16uC1:
		return status(C.nppiWarpPerspective_16u_C1R_Ctx(u16(src), ss, step(src), sr, u16(dst), step(dst), dr, &k[0], i, c))
	case Format16uC3:
		return status(C.nppiWarpPerspective_16u_C3R_Ctx(u16(src), ss, step(src), sr, u16(dst), step(dst), dr, &k[0], i, c))
	case Format16uC4:
		return status(C.nppiWarpPerspective_16u_C4R_Ctx(u16(src), ss, step(src), sr, u16(dst), step(dst), dr, &k[0], i, c))
	case Format32fC1:
		return status(C.nppiWarpPerspective_32f_C1R_Ctx(f32(src), ss, step(src), sr, f32(dst), step(dst), dr, &k[0], i, c))
	case Format32fC3:
		return status(C.nppiWarpPerspective_32f_C3R_Ctx(f32(src), ss, step(src), sr, f32(dst), step(dst), dr, &k[0], i, c))
	case Format32fC4:
		return status(C.nppiWarpPerspective_32f_C4R_Ctx(f32(src), ss, step(src), sr, f32(dst), step(dst), dr, &k[0], i, c))
	}
	return noVariant
}

func (nppLibrary) rotate(f Format, src plane, srcSize Size, srcROI Rect,
	dst plane, dstROI Rect, angle, shiftX, shiftY float64,
	interp Interpolation, sc *StreamContext) Status {
	ss, sr, dr := csize(srcSize), crect(srcROI), crect(dstROI)
	a, x, y := C.double(angle), C.double(shiftX), C.double(shiftY)
	i, c := C.int(interp), cctx(sc)
	switch f {
	case Format8uC1:
		return status(C.nppiRotate_8u_C1R_Ctx(u8(src), ss, step(src), sr, u8(dst), step(dst), dr, a, x, y, i, c))
	case Format8uC3:
		return status(C.nppiRotate_8u_C3R_Ctx(u8(src), ss, step(src), sr, u8(dst), step(dst), dr, a, x, y, i, c))
	case Format8uC4:
		return status(C.nppiRotate_8u_C4R_Ctx(u8(src), ss, step(src), sr, u8(dst), step(dst), dr, a, x, y, i, c))
	case Format16uC1:
		return status(C.nppiRotate_16u_C1R_Ctx(u16(src), ss, step(src), sr, u16(dst), step(dst), dr, a, x, y, i, c))
	case Format16uC3:
		return status(C.nppiRotate_16u_C3R_Ctx(u16(src), ss, step(src), sr, u16(dst), step(dst), dr, a, x, y, i, c))
	case Format16uC4:
		return status(C.nppiRotate_16u_C4R_Ctx(u16(src), ss, step(src), sr, u16(dst), step(dst), dr, a, x, y, i, c))
	case Format32fC1:
		return status(C.nppiRotate_32f_C1R_Ctx(f32(src), ss, step(src), sr, f32(dst), step(dst), dr, a, x, y, i, c))
	case Format32fC3:
		return status(C.nppiRotate_32f_C3R_Ctx(f32(src), ss, step(src), sr, f32(dst), step(dst), dr, a, x, y, i, c))
	case Format32fC4:
		return status(C.nppiRotate_32f_C4R_Ctx(f32(src), ss, step(src), sr, f32(dst), step(dst), dr, a, x, y, i, c))
	}
	return noVariant
}

func bounds(b [2][2]C.double) [2][2]float64 {
	return [2][2]float64{
		{float64(b[0][0]), float64(b[0][1])},
		{float64(b[1][0]), float64(b[1][1])},
	}
}

func (nppLibrary) rotateBound(srcROI Rect, angle, shiftX,
	shiftY float64) ([2][2]float64, Status) {
	var b [2][2]C.double
	st := C.nppiGetRotateBound(crect(srcROI), &b[0], C.double(angle),
		C.double(shiftX), C.double(shiftY))
	return bounds(b), status(st)
}

func (nppLibrary) affineBound(srcROI Rect,
	coeffs [2][3]float64) ([2][2]float64, Status) {
	var b [2][2]C.double
	var k [2][3]C.double
	for y := range coeffs {
		for x, v := range coeffs[y] {
			k[y][x] = C.double(v)
		}
	}
	st := C.nppiGetAffineBound(crect(srcROI), &b[0], &k[0])
	return bounds(b), status(st)
}

func (nppLibrary) filterBox(f Format, src plane, srcSize Size,
	srcOffset Point, dst plane, roi Size, mask Size, anchor Point,
	border BorderType, sc *StreamContext) Status {
	ss, so, r := csize(srcSize), cpoint(srcOffset), csize(roi)
	m, a, b, c := csize(mask), cpoint(anchor), C.NppiBorderType(border), cctx(sc)
	switch f {
	case Format8uC1:
		return status(C.nppiFilterBoxBorder_8u_C1R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, m, a, b, c))
	case Format8uC3:
		return status(C.nppiFilterBoxBorder_8u_C3R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, m, a, b, c))
	case Format8uC4:
		return status(C.nppiFilterBoxBorder_8u_C4R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, m, a, b, c))
	case Format16uC1:
		return status(C.nppiFilterBoxBorder_16u_C1R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, m, a, b, c))
	case Format16uC3:
		return status(C.nppiFilterBoxBorder_16u_C3R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, m, a, b, c))
	case Format16uC4:
		return status(C.nppiFilterBoxBorder_16u_C4R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, m, a, b, c))
	case Format16sC1:
		return status(C.nppiFilterBoxBorder_16s_C1R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, m, a, b, c))
	case Format16sC3:
		return status(C.nppiFilterBoxBorder_16s_C3R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, m, a, b, c))
	case Format16sC4:
		return status(C.nppiFilterBoxBorder_16s_C4R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, m, a, b, c))
	case Format32fC1:
		return status(C.nppiFilterBoxBorder_32f_C1R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, m, a, b, c))
	case Format32fC3:
		return status(C.nppiFilterBoxBorder_32f_C3R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, m, a, b, c))
	case Format32fC4:
		return status(C.nppiFilterBoxBorder_32f_C4R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, m, a, b, c))
	}
	return noVariant
}

func (nppLibrary) filterGauss(f Format, src plane, srcSize Size,
	srcOffset Point, dst plane, roi Size, mask MaskSize, border BorderType,
	sc *StreamContext) Status {
	ss, so, r := csize(srcSize), cpoint(srcOffset), csize(roi)
	m, b, c := C.NppiMaskSize(mask), C.NppiBorderType(border), cctx(sc)
	switch f {
	case Format8uC1:
		return status(C.nppiFilterGaussBorder_8u_C1R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, m, b, c))
	case Format8uC3:
		return status(C.nppiFilterGaussBorder_8u_C3R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, m, b, c))
	case Format8uC4:
		return status(C.nppiFilterGaussBorder_8u_C4R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, m, b, c))
	case Format16uC1:
		return status(C.nppiFilterGaussBorder_16u_C1R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, m, b, c))
	case Format16uC3:
		return status(C.nppiFilterGaussBorder_16u_C3R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, m, b, c))
	case Format16uC4:
		return status(C.nppiFilterGaussBorder_16u_C4R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, m, b, c))
	case Format16sC1:
		return status(C.nppiFilterGaussBorder_16s_C1R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, m, b, c))
	case Format16sC3:
		return status(C.nppiFilterGaussBorder_16s_C3R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, m, b, c))
	case Format16sC4:
		return status(C.nppiFilterGaussBorder_16s_C4R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, m, b, c))
	case Format32fC1:
		return status(C.nppiFilterGaussBorder_32f_C1R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, m, b, c))
	case Format32fC3:
		return status(C.nppiFilterGaussBorder_32f_C3R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, m, b, c))
	case Format32fC4:
		return status(C.nppiFilterGaussBorder_32f_C4R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, m, b, c))
	}
	return noVariant
}

func (nppLibrary) filterSobel(f Format, dir SobelDirection, src plane,
	srcSize Size, srcOffset Point, dst plane, roi Size, border BorderType,
	sc *StreamContext) Status {
	ss, so, r := csize(srcSize), cpoint(srcOffset), csize(roi)
	b, c := C.NppiBorderType(border), cctx(sc)
	if dir == SobelVertical {
		switch f {
		case Format8uC1:
			return status(C.nppiFilterSobelVertBorder_8u_C1R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, b, c))
		case Format8uC3:
			return status(C.nppiFilterSobelVertBorder_8u_C3R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, b, c))
		case Format8uC4:
			return status(C.nppiFilterSobelVertBorder_8u_C4R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, b, c))
		case Format16sC1:
			return status(C.nppiFilterSobelVertBorder_16s_C1R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, b, c))
		case Format16sC3:
			return status(C.nppiFilterSobelVertBorder_16s_C3R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, b, c))
		case Format16sC4:
			return status(C.nppiFilterSobelVertBorder_16s_C4R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, b, c))
		case Format32fC1:
			return status(C.nppiFilterSobelVertBorder_32f_C1R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, b, c))
		case Format32fC3:
			return status(C.nppiFilterSobelVertBorder_32f_C3R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, b, c))
		case Format32fC4:
			return status(C.nppiFilterSobelVertBorder_32f_C4R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, b, c))
		}
		return noVariant
	}
	switch f {
	case Format8uC1:
		return status(C.nppiFilterSobelHorizBorder_8u_C1R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, b, c))
	case Format8uC3:
		return status(C.nppiFilterSobelHorizBorder_8u_C3R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, b, c))
	case Format8uC4:
		return status(C.nppiFilterSobelHorizBorder_8u_C4R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, b, c))
	case Format16sC1:
		return status(C.nppiFilterSobelHorizBorder_16s_C1R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, b, c))
	case Format16sC3:
		return status(C.nppiFilterSobelHorizBorder_16s_C3R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, b, c))
	case Format16sC4:
		return status(C.nppiFilterSobelHorizBorder_16s_C4R_Ctx(s16(src), step32(src), ss, so, s16(dst), step32(dst), r, b, c))
	case Format32fC1:
		return status(C.nppiFilterSobelHorizBorder_32f_C1R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, b, c))
	case Format32fC3:
		return status(C.nppiFilterSobelHorizBorder_32f_C3R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, b, c))
	case Format32fC4:
		return status(C.nppiFilterSobelHorizBorder_32f_C4R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, b, c))
	}
	return noVariant
}

func (nppLibrary) filterMedianBufferSize(f Format, roi Size, mask Size,
	sc *StreamContext) (int, Status) {
	r, m, c := csize(roi), csize(mask), cctx(sc)
	var n C.Npp32u
	var st C.NppStatus
	switch f {
	case Format8uC1:
		st = C.nppiFilterMedianGetBufferSize_8u_C1R_Ctx(r, m, &n, c)
	case Format8uC3:
		st = C.nppiFilterMedianGetBufferSize_8u_C3R_Ctx(r, m, &n, c)
	case Format8uC4:
		st = C.nppiFilterMedianGetBufferSize_8u_C4R_Ctx(r, m, &n, c)
	case Format16uC1:
		st = C.nppiFilterMedianGetBufferSize_16u_C1R_Ctx(r, m, &n, c)
	case Format16uC3:
		st = C.nppiFilterMedianGetBufferSize_16u_C3R_Ctx(r, m, &n, c)
	case Format16uC4:
		st = C.nppiFilterMedianGetBufferSize_16u_C4R_Ctx(r, m, &n, c)
	case Format32fC1:
		st = C.nppiFilterMedianGetBufferSize_32f_C1R_Ctx(r, m, &n, c)
	case Format32fC3:
		st = C.nppiFilterMedianGetBufferSize_32f_C3R_Ctx(r, m, &n, c)
	case Format32fC4:
		st = C.nppiFilterMedianGetBufferSize_32f_C4R_Ctx(r, m, &n, c)
	default:
		return 0, noVariant
	}
	return int(n), status(st)
}

func (nppLibrary) filterMedian(f Format, src, dst plane, roi Size,
	mask Size, anchor Point, buf DevicePtr, sc *StreamContext) Status {
	r, m, a, c := csize(roi), csize(mask), cpoint(anchor), cctx(sc)
	b := dev[C.Npp8u](buf)
	switch f {
	case Format8uC1:
		return status(C.nppiFilterMedian_8u_C1R_Ctx(u8(src), step32(src), u8(dst), step32(dst), r, m, a, b, c))
	case Format8uC3:
		return status(C.nppiFilterMedian_8u_C3R_Ctx(u8(src), step32(src), u8(dst), step32(dst), r, m, a, b, c))
	case Format8uC4:
		return status(C.nppiFilterMedian_8u_C4R_Ctx(u8(src), step32(src), u8(dst), step32(dst), r, m, a, b, c))
	case Format16uC1:
		return status(C.nppiFilterMedian_16u_C1R_Ctx(u16(src), step32(src), u16(dst), step32(dst), r, m, a, b, c))
	case Format16uC3:
		return status(C.nppiFilterMedian_16u_C3R_Ctx(u16(src), step32(src), u16(dst), step32(dst), r, m, a, b, c))
	case Format16uC4:
		return status(C.nppiFilterMedian_16u_C4R_Ctx(u16(src), step32(src), u16(dst), step32(dst), r, m, a, b, c))
	case Format32fC1:
		return status(C.nppiFilterMedian_32f_C1R_Ctx(f32(src), step32(src), f32(dst), step32(dst), r, m, a, b, c))
	case Format32fC3:
		return status(C.nppiFilterMedian_32f_C3R_Ctx(f32(src), step32(src), f32(dst), step32(dst), r, m, a, b, c))
	case Format32fC4:
		return status(C.nppiFilterMedian_32f_C4R_Ctx(f32(src), step32(src), f32(dst), step32(dst), r, m, a, b, c))
	}
	return noVariant
}

func (nppLibrary) morphology(op morphOp, f Format, src plane, srcSize Size,
	srcOffset Point, dst plane, roi Size, mask DevicePtr, maskSize Size,
	anchor Point, border BorderType, sc *StreamContext) Status {
	ss, so, r := csize(srcSize), cpoint(srcOffset), csize(roi)
	k, ks, a := dev[C.Npp8u](mask), csize(maskSize), cpoint(anchor)
	b, c := C.NppiBorderType(border), cctx(sc)
	if op == morphErode {
		switch f {
		case Format8uC1:
			return status(C.nppiErodeBorder_8u_C1R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, k, ks, a, b, c))
		case Format8uC3:
			return status(C.nppiErodeBorder_8u_C3R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, k, ks, a, b, c))
		case Format8uC4:
			return status(C.nppiErodeBorder_8u_C4R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, k, ks, a, b, c))
		case Format16uC1:
			return status(C.nppiErodeBorder_16u_C1R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, k, ks, a, b, c))
		case Format16uC3:
			return status(C.nppiErodeBorder_16u_C3R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, k, ks, a, b, c))
		case Format16uC4:
			return status(C.nppiErodeBorder_16u_C4R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, k, ks, a, b, c))
		case Format32fC1:
			return status(C.nppiErodeBorder_32f_C1R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, k, ks, a, b, c))
		case Format32fC3:
			return status(C.nppiErodeBorder_32f_C3R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, k, ks, a, b, c))
		case Format32fC4:
			return status(C.nppiErodeBorder_32f_C4R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, k, ks, a, b, c))
		}
		return noVariant
	}
	switch f {
	case Format8uC1:
		return status(C.nppiDilateBorder_8u_C1R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, k, ks, a, b, c))
	case Format8uC3:
		return status(C.nppiDilateBorder_8u_C3R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, k, ks, a, b, c))
	case Format8uC4:
		return status(C.nppiDilateBorder_8u_C4R_Ctx(u8(src), step32(src), ss, so, u8(dst), step32(dst), r, k, ks, a, b, c))
	case Format16uC1:
		return status(C.nppiDilateBorder_16u_C1R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, k, ks, a, b, c))
	case Format16uC3:
		return status(C.nppiDilateBorder_16u_C3R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, k, ks, a, b, c))
	case Format16uC4:
		return status(C.nppiDilateBorder_16u_C4R_Ctx(u16(src), step32(src), ss, so, u16(dst), step32(dst), r, k, ks, a, b, c))
	case Format32fC1:
		return status(C.nppiDilateBorder_32f_C1R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, k, ks, a, b, c))
	case Format32fC3:
		return status(C.nppiDilateBorder_32f_C3R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, k, ks, a, b, c))
	case Format32fC4:
		return status(C.nppiDilateBorder_32f_C4R_Ctx(f32(src), step32(src), ss, so, f32(dst), step32(dst), r, k, ks, a, b, c))
	}
	return noVariant
}

func (nppLibrary) morphology3x3(op morphOp, f Format, src, dst plane,
	roi Size, sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	if op == morphErode {
		switch f {
		case Format8uC1:
			return status(C.nppiErode3x3_8u_C1R_Ctx(u8(src), step32(src), u8(dst), step32(dst), r, c))
		case Format8uC3:
			return status(C.nppiErode3x3_8u_C3R_Ctx(u8(src), step32(src), u8(dst), step32(dst), r, c))
		case Format8uC4:
			return status(C.nppiErode3x3_8u_C4R_Ctx(u8(src), step32(src), u8(dst), step32(dst), r, c))
		case Format16uC1:
			return status(C.nppiErode3x3_16u_C1R_Ctx(u16(src), step32(src), u16(dst), step32(dst), r, c))
		case Format16uC3:
			return status(C.nppiErode3x3_16u_C3R_Ctx(u16(src), step32(src), u16(dst), step32(dst), r, c))
		case Format16uC4:
			return status(C.nppiErode3x3_16u_C4R_Ctx(u16(src), step32(src), u16(dst), step32(dst), r, c))
		case Format32fC1:
			return status(C.nppiErode3x3_32f_C1R_Ctx(f32(src), step32(src), f32(dst), step32(dst), r, c))
		case Format32fC3:
			return status(C.nppiErode3x3_32f_C3R_Ctx(f32(src), step32(src), f32(dst), step32(dst), r, c))
		case Format32fC4:
			return status(C.nppiErode3x3_32f_C4R_Ctx(f32(src), step32(src), f32(dst), step32(dst), r, c))
		}
		return noVariant
	}
	switch f {
	case Format8uC1:
		return status(C.nppiDilate3x3_8u_C1R_Ctx(u8(src), step32(src), u8(dst), step32(dst), r, c))
	case Format8uC3:
		return status(C.nppiDilate3x3_8u_C3R_Ctx(u8(src), step32(src), u8(dst), step32(dst), r, c))
	case Format8uC4:
		return status(C.nppiDilate3x3_8u_C4R_Ctx(u8(src), step32(src), u8(dst), step32(dst), r, c))
	case Format16uC1:
		return status(C.nppiDilate3x3_16u_C1R_Ctx(u16(src), step32(src), u16(dst), step32(dst), r, c))
	case Format16uC3:
		return status(C.nppiDilate3x3_16u_C3R_Ctx(u16(src), step32(src), u16(dst), step32(dst), r, c))
	case Format16uC4:
		return status(C.nppiDilate3x3_16u_C4R_Ctx(u16(src), step32(src), u16(dst), step32(dst), r, c))
	case Format32fC1:
		return status(C.nppiDilate3x3_32f_C1R_Ctx(f32(src), step32(src), f32(dst), step32(dst), r, c))
	case Format32fC3:
		return status(C.nppiDilate3x3_32f_C3R_Ctx(f32(src), step32(src), f32(dst), step32(dst), r, c))
	case Format32fC4:
		return status(C.nppiDilate3x3_32f_C4R_Ctx(f32(src), step32(src), f32(dst), step32(dst), r, c))
	}
	return noVariant
}
